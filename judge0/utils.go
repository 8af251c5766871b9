package judge0

import "os"

func getJudgeUrlFromEnv() string {
	judgeUrl := os.Getenv("JUDGE_URL")
	if judgeUrl == "" {
		panic("JUDGE_URL not set in .env file")
	}
	return judgeUrl
}

// auth is optional; self-hosted judges usually run without it
func getJudgeAuthFromEnv() (string, string) {
	return os.Getenv("JUDGE_AUTH_HEADER"), os.Getenv("JUDGE_AUTH_KEY")
}
