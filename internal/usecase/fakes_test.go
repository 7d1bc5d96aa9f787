package usecase

import (
	"context"
	"sort"

	"kd_cleaning/internal/domain/entities"
)

// In-memory fakes for the repository interfaces, so the usecases are
// exercised without DynamoDB. Lists return records sorted by ID for
// deterministic assertions.

type fakeServiceRepo struct {
	byID map[string]entities.Service
}

func newFakeServiceRepo(services ...entities.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{byID: make(map[string]entities.Service)}
	for _, s := range services {
		r.byID[s.ID] = s
	}
	return r
}

func (r *fakeServiceRepo) Create(_ context.Context, s entities.Service) (entities.Service, error) {
	r.byID[s.ID] = s
	return s, nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (entities.Service, error) {
	return r.byID[id], nil
}

func (r *fakeServiceRepo) ListByUserID(_ context.Context, userID string) ([]entities.Service, error) {
	var out []entities.Service
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, s entities.Service) (entities.Service, error) {
	r.byID[s.ID] = s
	return s, nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeWorkerRepo struct {
	byID map[string]entities.Worker
}

func newFakeWorkerRepo(workers ...entities.Worker) *fakeWorkerRepo {
	r := &fakeWorkerRepo{byID: make(map[string]entities.Worker)}
	for _, w := range workers {
		r.byID[w.ID] = w
	}
	return r
}

func (r *fakeWorkerRepo) Create(_ context.Context, w entities.Worker) (entities.Worker, error) {
	r.byID[w.ID] = w
	return w, nil
}

func (r *fakeWorkerRepo) GetByID(_ context.Context, id string) (entities.Worker, error) {
	return r.byID[id], nil
}

func (r *fakeWorkerRepo) ListByUserID(_ context.Context, userID string) ([]entities.Worker, error) {
	var out []entities.Worker
	for _, w := range r.byID {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeWorkerRepo) Update(_ context.Context, w entities.Worker) (entities.Worker, error) {
	r.byID[w.ID] = w
	return w, nil
}

func (r *fakeWorkerRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeUnitRepo struct {
	byID map[string]entities.Unit
}

func newFakeUnitRepo(units ...entities.Unit) *fakeUnitRepo {
	r := &fakeUnitRepo{byID: make(map[string]entities.Unit)}
	for _, u := range units {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUnitRepo) Create(_ context.Context, u entities.Unit) (entities.Unit, error) {
	r.byID[u.ID] = u
	return u, nil
}

func (r *fakeUnitRepo) GetByID(_ context.Context, id string) (entities.Unit, error) {
	return r.byID[id], nil
}

func (r *fakeUnitRepo) ListByUserID(_ context.Context, userID string) ([]entities.Unit, error) {
	var out []entities.Unit
	for _, u := range r.byID {
		if u.UserID == userID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUnitRepo) Update(_ context.Context, u entities.Unit) (entities.Unit, error) {
	r.byID[u.ID] = u
	return u, nil
}

func (r *fakeUnitRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeClientRepo struct {
	byID map[string]entities.Client
}

func newFakeClientRepo(clients ...entities.Client) *fakeClientRepo {
	r := &fakeClientRepo{byID: make(map[string]entities.Client)}
	for _, c := range clients {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.byID[c.ID] = c
	return c, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (entities.Client, error) {
	return r.byID[id], nil
}

func (r *fakeClientRepo) ListByUserID(_ context.Context, userID string) ([]entities.Client, error) {
	var out []entities.Client
	for _, c := range r.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c entities.Client) (entities.Client, error) {
	r.byID[c.ID] = c
	return c, nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakePaymentRepo struct {
	byID map[string]entities.Payment
}

func newFakePaymentRepo(payments ...entities.Payment) *fakePaymentRepo {
	r := &fakePaymentRepo{byID: make(map[string]entities.Payment)}
	for _, p := range payments {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakePaymentRepo) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.byID[p.ID] = p
	return p, nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id string) (entities.Payment, error) {
	return r.byID[id], nil
}

func (r *fakePaymentRepo) ListByUserID(_ context.Context, userID string) ([]entities.Payment, error) {
	var out []entities.Payment
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.byID[p.ID] = p
	return p, nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeInvoiceRepo struct {
	byID map[string]entities.Invoice
}

func newFakeInvoiceRepo(invoices ...entities.Invoice) *fakeInvoiceRepo {
	r := &fakeInvoiceRepo{byID: make(map[string]entities.Invoice)}
	for _, i := range invoices {
		r.byID[i.ID] = i
	}
	return r
}

func (r *fakeInvoiceRepo) Create(_ context.Context, i entities.Invoice) (entities.Invoice, error) {
	r.byID[i.ID] = i
	return i, nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	return r.byID[id], nil
}

func (r *fakeInvoiceRepo) ListByUserID(_ context.Context, userID string) ([]entities.Invoice, error) {
	var out []entities.Invoice
	for _, i := range r.byID {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, i entities.Invoice) (entities.Invoice, error) {
	r.byID[i.ID] = i
	return i, nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type fakeConfigRepo struct {
	byUser map[string]entities.UserConfig
}

func newFakeConfigRepo(configs ...entities.UserConfig) *fakeConfigRepo {
	r := &fakeConfigRepo{byUser: make(map[string]entities.UserConfig)}
	for _, c := range configs {
		r.byUser[c.UserID] = c
	}
	return r
}

func (r *fakeConfigRepo) GetByUserID(_ context.Context, userID string) (entities.UserConfig, error) {
	return r.byUser[userID], nil
}

func (r *fakeConfigRepo) Save(_ context.Context, c entities.UserConfig) (entities.UserConfig, error) {
	r.byUser[c.UserID] = c
	return c, nil
}
