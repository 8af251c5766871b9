package problems

import (
	"context"
	"sort"
	"sync"
)

type InMemRepo struct {
	lock     sync.Mutex
	problems map[string]Problem
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		problems: make(map[string]Problem),
	}
}

func (m *InMemRepo) Upsert(p Problem) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.problems[p.ID] = p
}

func (m *InMemRepo) Get(ctx context.Context, problemID string) (Problem, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	p, ok := m.problems[problemID]
	if !ok {
		return Problem{}, ErrProblemNotFound()
	}
	return p, nil
}

func (m *InMemRepo) List(ctx context.Context) ([]Problem, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := make([]Problem, 0, len(m.problems))
	for _, p := range m.problems {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ID < res[j].ID
	})
	return res, nil
}
