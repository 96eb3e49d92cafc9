package service

import (
	"context"
	"time"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

// In-memory collaborators shared by the service tests.

type stubUserRepo struct {
	users     map[int64]*domain.User
	nextID    int64
	createErr error
	updateErr error
	findCalls int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.findCalls++
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubRoleRepo struct {
	roles  map[string]*domain.Role
	nextID int64
}

func newStubRoleRepo(names ...string) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[string]*domain.Role)}
	for _, n := range names {
		r.nextID++
		r.roles[n] = &domain.Role{ID: r.nextID, Name: n, CreatedAt: time.Now().UTC()}
	}
	return r
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, exists := r.roles[role.Name]; exists {
		return nil, domain.ErrDuplicateRole
	}
	r.nextID++
	created := *role
	created.ID = r.nextID
	r.roles[created.Name] = &created
	return &created, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, fullName string) (*domain.Role, error) {
	role, ok := r.roles[fullName]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

type recordingAudit struct {
	entries []domain.AuditEntry
	err     error
}

func (a *recordingAudit) Record(_ context.Context, action string, userID int64) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, domain.AuditEntry{
		Action:    action,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

type stubCache struct {
	data      map[string]*domain.Profile
	evictions []string
	getErr    error
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string]*domain.Profile)}
}

func (c *stubCache) Get(_ context.Context, email string) (*domain.Profile, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.data[email], nil
}

func (c *stubCache) Put(_ context.Context, email string, profile *domain.Profile) error {
	c.data[email] = profile
	return nil
}

func (c *stubCache) Evict(_ context.Context, email string) error {
	c.evictions = append(c.evictions, email)
	delete(c.data, email)
	return nil
}

type recordingPublisher struct {
	events []domain.IdentityEvent
}

func (p *recordingPublisher) Publish(event domain.IdentityEvent) {
	p.events = append(p.events, event)
}

// passTx runs the callback without transactional semantics.
type passTx struct{}

func (passTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
