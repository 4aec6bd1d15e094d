package service

import (
	"context"
	"errors"
	"testing"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

type stubUserRepo struct {
	byID          map[string]*domain.User
	lastAdminIDs  []string
	listedCompany string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) ListByCompany(_ context.Context, companyID string, adminIDs []string) ([]*domain.User, error) {
	r.listedCompany = companyID
	r.lastAdminIDs = adminIDs
	var out []*domain.User
	for _, u := range r.byID {
		if u.CompanyID != companyID {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) Get(_ context.Context, id string, adminIDs []string) (*domain.User, error) {
	r.lastAdminIDs = adminIDs
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func TestWorkspaceService_ListTeam_PassesAdminList(t *testing.T) {
	companies := &stubCompanyRepo{company: &domain.Company{
		ID:       "co-1",
		AdminIDs: []string{"u-1", "u-2"},
	}}
	users := newStubUserRepo()
	users.byID["u-1"] = &domain.User{ID: "u-1", CompanyID: "co-1"}

	svc := NewWorkspaceService(companies, users, newStubTaskTypeRepo(), discardLogger)

	team, err := svc.ListTeam(context.Background(), "co-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(team) != 1 {
		t.Errorf("team: want 1 member, got %d", len(team))
	}
	if len(users.lastAdminIDs) != 2 || users.lastAdminIDs[0] != "u-1" {
		t.Errorf("admin list must flow into role derivation, got %v", users.lastAdminIDs)
	}
}

func TestWorkspaceService_ListTeam_CompanyMissing(t *testing.T) {
	svc := NewWorkspaceService(&stubCompanyRepo{}, newStubUserRepo(), newStubTaskTypeRepo(), discardLogger)

	_, err := svc.ListTeam(context.Background(), "co-gone")
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Errorf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestWorkspaceService_GetTeamMember_PassesAdminList(t *testing.T) {
	companies := &stubCompanyRepo{company: &domain.Company{
		ID:       "co-1",
		AdminIDs: []string{"u-7"},
	}}
	users := newStubUserRepo()
	users.byID["u-7"] = &domain.User{ID: "u-7", CompanyID: "co-1"}

	svc := NewWorkspaceService(companies, users, newStubTaskTypeRepo(), discardLogger)

	if _, err := svc.GetTeamMember(context.Background(), "co-1", "u-7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users.lastAdminIDs) != 1 || users.lastAdminIDs[0] != "u-7" {
		t.Errorf("admin list must flow into role derivation, got %v", users.lastAdminIDs)
	}
}

func TestWorkspaceService_UpdateCompany(t *testing.T) {
	companies := &stubCompanyRepo{company: &domain.Company{ID: "co-1", Name: "Old Name"}}
	svc := NewWorkspaceService(companies, newStubUserRepo(), newStubTaskTypeRepo(), discardLogger)

	name := "Crewbase Builders"
	co, err := svc.UpdateCompany(context.Background(), "co-1", ports.UpdateCompanyInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if co.Name != name {
		t.Errorf("name: want %q, got %q", name, co.Name)
	}
}

func TestWorkspaceService_TaskTypes(t *testing.T) {
	taskTypes := newStubTaskTypeRepo()
	svc := NewWorkspaceService(&stubCompanyRepo{}, newStubUserRepo(), taskTypes, discardLogger)

	created, err := svc.CreateTaskType(context.Background(), ports.CreateTaskTypeInput{
		CompanyID: "co-1", Label: "Framing", Color: "#ff9800",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := svc.ListTaskTypes(context.Background(), "co-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].Label != "Framing" {
		t.Errorf("list after create wrong: %v", listed)
	}

	if err := svc.DeleteTaskType(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, _ = svc.ListTaskTypes(context.Background(), "co-1")
	if len(listed) != 0 {
		t.Errorf("after delete: want 0, got %d", len(listed))
	}
}
