package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/dbx"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/associations"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/curricula"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/projects"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/tasks"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// newTestDB opens an empty in-memory database. Services only need it to
// begin and commit transactions; the fake repositories keep the data.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// store is an in-memory stand-in for the whole schema.
type store struct {
	mu sync.Mutex

	accounts  map[string]*models.Account
	refresh   map[string]*models.RefreshToken
	tasks     map[string]*models.Task
	curricula map[string]*models.Curriculum
	links     map[string]*models.Association
	projects  map[string]*models.Project

	seq int
}

func newStore() *store {
	return &store{
		accounts:  map[string]*models.Account{},
		refresh:   map[string]*models.RefreshToken{},
		tasks:     map[string]*models.Task{},
		curricula: map[string]*models.Curriculum{},
		links:     map[string]*models.Association{},
		projects:  map[string]*models.Project{},
	}
}

func (s *store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s%03d", prefix, s.seq)
}

func (s *store) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (s *store) Accounts(dbx.DBTX) accounts.Repository           { return accountRepo{s} }
func (s *store) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return refreshRepo{s} }
func (s *store) Tasks(dbx.DBTX) tasks.Repository                 { return taskRepo{s} }
func (s *store) Curricula(dbx.DBTX) curricula.Repository         { return curriculumRepo{s} }
func (s *store) Associations(dbx.DBTX) associations.Repository   { return linkRepo{s} }
func (s *store) Projects(dbx.DBTX) projects.Repository           { return projectRepo{s} }

// --- accounts ---

type accountRepo struct{ s *store }

func (r accountRepo) find(match func(a *models.Account) bool) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if match(a) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r accountRepo) FindByID(_ context.Context, id string) (*models.Account, error) {
	return r.find(func(a *models.Account) bool { return a.ID == id })
}

func (r accountRepo) FindByUsername(_ context.Context, username string) (*models.Account, error) {
	return r.find(func(a *models.Account) bool { return a.Username == username })
}

func (r accountRepo) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	return r.find(func(a *models.Account) bool { return strings.EqualFold(a.Email, email) })
}

func (r accountRepo) FindByVerificationToken(_ context.Context, token string) (*models.Account, error) {
	return r.find(func(a *models.Account) bool { return a.VerificationToken != nil && *a.VerificationToken == token })
}

func (r accountRepo) FindByResetToken(_ context.Context, token string) (*models.Account, error) {
	return r.find(func(a *models.Account) bool { return a.ResetToken != nil && *a.ResetToken == token })
}

func (r accountRepo) taken(a *models.Account) bool {
	for _, o := range r.s.accounts {
		if o.ID != a.ID && (o.Username == a.Username || strings.EqualFold(o.Email, a.Email)) {
			return true
		}
	}
	return false
}

func (r accountRepo) Create(_ context.Context, a *models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if a.ID == "" {
		a.ID = r.s.nextID("acc")
	}
	if r.taken(a) {
		return common.ErrAlreadyExists
	}
	a.Version = 1
	a.CreatedAt = time.Now()
	cp := *a
	r.s.accounts[a.ID] = &cp
	return nil
}

func (r accountRepo) Update(_ context.Context, a *models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.accounts[a.ID]
	if !ok || cur.Version != a.Version {
		return common.ErrVersionConflict
	}
	if r.taken(a) {
		return common.ErrAlreadyExists
	}
	a.Version++
	cp := *a
	r.s.accounts[a.ID] = &cp
	return nil
}

func (r accountRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.accounts[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.accounts, id)
	return nil
}

func (r accountRepo) DeleteByEmail(ctx context.Context, email string) error {
	a, err := r.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return r.Delete(ctx, a.ID)
}

// --- refresh tokens ---

type refreshRepo struct{ s *store }

func (r refreshRepo) Create(_ context.Context, accountID, token string, validity time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.refresh[token] = &models.RefreshToken{AccountID: accountID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (r refreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.refresh[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (r refreshRepo) Delete(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.refresh, token)
	return nil
}

func (r refreshRepo) DeleteAllForAccount(_ context.Context, accountID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k, t := range r.s.refresh {
		if t.AccountID == accountID {
			delete(r.s.refresh, k)
		}
	}
	return nil
}

// --- tasks ---

type taskRepo struct{ s *store }

func copyTask(t *models.Task) *models.Task {
	cp := *t
	cp.AssigneeIDs = append([]string(nil), t.AssigneeIDs...)
	cp.Associations = nil
	return &cp
}

func (r taskRepo) FindByID(_ context.Context, id string) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyTask(t), nil
}

func (r taskRepo) FindAllByID(_ context.Context, ids []string) ([]*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Task
	for _, id := range ids {
		if t, ok := r.s.tasks[id]; ok {
			out = append(out, copyTask(t))
		}
	}
	return out, nil
}

func (r taskRepo) FindAllVisibleTo(_ context.Context, accountID string) ([]*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Task
	for _, t := range r.s.tasks {
		visible := t.IsAssignee(accountID)
		if !visible && t.ProjectID != nil {
			if p, ok := r.s.projects[*t.ProjectID]; ok {
				visible = p.HasMember(accountID)
			}
		}
		if visible {
			out = append(out, copyTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r taskRepo) Create(_ context.Context, t *models.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t.ProjectID != nil {
		if _, ok := r.s.projects[*t.ProjectID]; !ok {
			return common.ErrorNotFound
		}
	}
	if t.ID == "" {
		t.ID = r.s.nextID("task")
	}
	t.Version = 1
	r.s.tasks[t.ID] = copyTask(t)
	return nil
}

func (r taskRepo) Update(_ context.Context, t *models.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.tasks[t.ID]
	if !ok || cur.Version != t.Version {
		return common.ErrVersionConflict
	}
	t.Version++
	stored := copyTask(t)
	stored.AssigneeIDs = cur.AssigneeIDs
	r.s.tasks[t.ID] = stored
	return nil
}

func (r taskRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.tasks, id)
	for k, l := range r.s.links {
		if l.TaskID == id {
			delete(r.s.links, k)
		}
	}
	return nil
}

func (r taskRepo) SetAssignees(_ context.Context, taskID string, accountIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[taskID]
	if !ok {
		return common.ErrorNotFound
	}
	t.AssigneeIDs = append([]string(nil), accountIDs...)
	return nil
}

// --- curricula ---

type curriculumRepo struct{ s *store }

func (r curriculumRepo) FindByID(_ context.Context, id string) (*models.Curriculum, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.curricula[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r curriculumRepo) FindAllByID(_ context.Context, ids []string) ([]*models.Curriculum, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Curriculum
	for _, id := range ids {
		if c, ok := r.s.curricula[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r curriculumRepo) FindByAccount(_ context.Context, accountID string) (*models.Curriculum, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.curricula {
		if c.AccountID == accountID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r curriculumRepo) Create(_ context.Context, c *models.Curriculum) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.curricula {
		if o.AccountID == c.AccountID {
			return common.ErrAlreadyExists
		}
	}
	if c.ID == "" {
		c.ID = r.s.nextID("cur")
	}
	cp := *c
	r.s.curricula[c.ID] = &cp
	return nil
}

func (r curriculumRepo) Update(_ context.Context, c *models.Curriculum) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.curricula[c.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *c
	r.s.curricula[c.ID] = &cp
	return nil
}

func (r curriculumRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.curricula[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.curricula, id)
	for k, l := range r.s.links {
		if l.CurriculumID == id {
			delete(r.s.links, k)
		}
	}
	return nil
}

// --- associations ---

type linkRepo struct{ s *store }

func (r linkRepo) filter(match func(l *models.Association) bool) []*models.Association {
	var out []*models.Association
	for _, l := range r.s.links {
		if match(l) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r linkRepo) FindByCurriculumAndTask(_ context.Context, curriculumID, taskID string) (*models.Association, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	found := r.filter(func(l *models.Association) bool { return l.CurriculumID == curriculumID && l.TaskID == taskID })
	if len(found) == 0 {
		return nil, common.ErrorNotFound
	}
	return found[0], nil
}

func (r linkRepo) FindAllByTask(_ context.Context, taskID string) ([]*models.Association, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filter(func(l *models.Association) bool { return l.TaskID == taskID }), nil
}

func (r linkRepo) FindAllByCurriculum(_ context.Context, curriculumID string) ([]*models.Association, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.filter(func(l *models.Association) bool { return l.CurriculumID == curriculumID }), nil
}

func (r linkRepo) Create(_ context.Context, a *models.Association) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.links {
		if l.TaskID == a.TaskID && l.CurriculumID == a.CurriculumID {
			return common.ErrAlreadyExists
		}
	}
	if a.ID == "" {
		a.ID = r.s.nextID("link")
	}
	a.Version = 1
	cp := *a
	r.s.links[a.ID] = &cp
	return nil
}

func (r linkRepo) Update(_ context.Context, a *models.Association) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.links[a.ID]
	if !ok || cur.Version != a.Version {
		return common.ErrVersionConflict
	}
	a.Version++
	cp := *a
	r.s.links[a.ID] = &cp
	return nil
}

func (r linkRepo) DeleteAll(_ context.Context, ids []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		delete(r.s.links, id)
	}
	return nil
}

// --- projects ---

type projectRepo struct{ s *store }

func copyProject(p *models.Project) *models.Project {
	cp := *p
	cp.MemberIDs = append([]string(nil), p.MemberIDs...)
	return &cp
}

func (r projectRepo) FindByID(_ context.Context, id string) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyProject(p), nil
}

func (r projectRepo) FindAllForAccount(_ context.Context, accountID string) ([]*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Project
	for _, p := range r.s.projects {
		if p.HasMember(accountID) {
			out = append(out, copyProject(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r projectRepo) Create(_ context.Context, p *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == "" {
		p.ID = r.s.nextID("prj")
	}
	p.MemberIDs = []string{p.OwnerID}
	r.s.projects[p.ID] = copyProject(p)
	return nil
}

func (r projectRepo) Update(_ context.Context, p *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.projects[p.ID]
	if !ok {
		return common.ErrorNotFound
	}
	cur.Title, cur.Description = p.Title, p.Description
	return nil
}

func (r projectRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.projects, id)
	for k, t := range r.s.tasks {
		if t.ProjectID != nil && *t.ProjectID == id {
			delete(r.s.tasks, k)
		}
	}
	return nil
}

func (r projectRepo) AddMember(_ context.Context, projectID, accountID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[projectID]
	if !ok {
		return common.ErrorNotFound
	}
	if _, ok := r.s.accounts[accountID]; !ok {
		return common.ErrorNotFound
	}
	if !p.HasMember(accountID) {
		p.MemberIDs = append(p.MemberIDs, accountID)
	}
	return nil
}

// --- mail ---

type sentMail struct {
	kind    string
	address string
	token   string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) record(kind, address, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return fmt.Errorf("%w: %w", common.ErrTransport, m.err)
	}
	m.sent = append(m.sent, sentMail{kind: kind, address: address, token: token})
	return nil
}

func (m *fakeMailer) SendVerificationEmail(_ context.Context, address, token string) error {
	return m.record("verify", address, token)
}

func (m *fakeMailer) SendPasswordResetEmail(_ context.Context, address, token string) error {
	return m.record("reset", address, token)
}

func (m *fakeMailer) last(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no mail sent")
	return m.sent[len(m.sent)-1]
}
