package service

import (
	"context"
	"sort"
	"sync"

	"minimal_api/internal/model"
)

// memVehicleRepo is an in-memory VehicleRepository honouring LIMIT/OFFSET semantics
type memVehicleRepo struct {
	mu      sync.Mutex
	nextID  int
	rows    map[int]model.Vehicle
	updates int
	deletes int
	err     error
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{nextID: 1, rows: map[int]model.Vehicle{}}
}

func (r *memVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.nextID
	r.nextID++
	r.rows[v.ID] = *v
	return nil
}

func (r *memVehicleRepo) FindByID(_ context.Context, id int) (*model.Vehicle, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *memVehicleRepo) FindPage(_ context.Context, page, size int) ([]model.Vehicle, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	if page < 1 {
		page = 1
	}
	out := []model.Vehicle{}
	for i := (page - 1) * size; i < len(ids) && len(out) < size; i++ {
		out = append(out, r.rows[ids[i]])
	}
	return out, nil
}

func (r *memVehicleRepo) Update(_ context.Context, v *model.Vehicle) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if _, ok := r.rows[v.ID]; ok {
		r.rows[v.ID] = *v
	}
	return nil
}

func (r *memVehicleRepo) Delete(_ context.Context, id int) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	delete(r.rows, id)
	return nil
}

// memAdminRepo is an in-memory AdministratorRepository
type memAdminRepo struct {
	mu     sync.Mutex
	nextID int
	rows   []model.Administrator
	err    error
}

func newMemAdminRepo(admins ...model.Administrator) *memAdminRepo {
	r := &memAdminRepo{nextID: 1}
	for _, a := range admins {
		a := a
		_ = r.Create(context.Background(), &a)
	}
	return r
}

func (r *memAdminRepo) Create(_ context.Context, a *model.Administrator) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *a)
	return nil
}

func (r *memAdminRepo) find(match func(model.Administrator) bool) (*model.Administrator, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if match(a) {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memAdminRepo) FindByCredentials(_ context.Context, email, password string) (*model.Administrator, error) {
	return r.find(func(a model.Administrator) bool { return a.Email == email && a.Password == password })
}

func (r *memAdminRepo) FindByEmail(_ context.Context, email string) (*model.Administrator, error) {
	return r.find(func(a model.Administrator) bool { return a.Email == email })
}

func (r *memAdminRepo) FindByID(_ context.Context, id int) (*model.Administrator, error) {
	return r.find(func(a model.Administrator) bool { return a.ID == id })
}

func (r *memAdminRepo) FindAll(_ context.Context) ([]model.Administrator, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Administrator{}, r.rows...), nil
}

func (r *memAdminRepo) FindPage(_ context.Context, page, size int) ([]model.Administrator, error) {
	all, err := r.FindAll(context.Background())
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(all) {
		return []model.Administrator{}, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}
