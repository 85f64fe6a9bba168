package service

import (
	"context"
	"fmt"

	feedonomics "github.com/feedonomics/feedonomics-go/pkg/client"
)

// stubAPI implements API with per-method function fields. A call to a method
// whose field is nil panics, which both catches steps that should have been
// skipped and exercises the setup workflow's recover boundary.
type stubAPI struct {
	dbID string

	getAccounts              func() feedonomics.Result[[]feedonomics.Account]
	createBigCommerceAccount func(req feedonomics.BigCommerceAccountRequest) feedonomics.Result[feedonomics.Account]
	inviteUser               func(accountID string, invite feedonomics.UserInvite) feedonomics.Result[feedonomics.UserInvite]
	createDatabase           func(accountID, name string) feedonomics.Result[feedonomics.Database]
	getGroups                func(accountID string) feedonomics.Result[[]feedonomics.Group]
	createGroup              func(accountID, name string) feedonomics.Result[feedonomics.Group]
	moveDatabaseToGroup      func(dbID, groupID string) feedonomics.Result[feedonomics.Database]
	getVaultEntries          func() feedonomics.Result[[]feedonomics.VaultEntry]
	updateVaultEntry         func(entryID string, entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry]
	deleteVaultEntry         func(entryID string) feedonomics.Result[struct{}]
	createDbVaultEntry       func(entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry]
	getImports               func() feedonomics.Result[[]feedonomics.Import]
	createImport             func(imp feedonomics.Import) feedonomics.Result[feedonomics.Import]
	updateImport             func(importID string, imp feedonomics.Import) feedonomics.Result[feedonomics.Import]
	setImportSchedule        func(importID string, sched feedonomics.Schedule) feedonomics.Result[feedonomics.Schedule]
	getJoinImports           func() feedonomics.Result[[]feedonomics.Import]
	createJoinImport         func(imp feedonomics.Import) feedonomics.Result[feedonomics.Import]
	getExports               func() feedonomics.Result[[]feedonomics.Export]
	createExport             func(exp feedonomics.Export) feedonomics.Result[feedonomics.Export]
	updateExport             func(exportID string, exp feedonomics.Export) feedonomics.Result[feedonomics.Export]
	applyBuildTemplate       func(template string) feedonomics.Result[struct{}]
	buildPreprocessorURL     func(info feedonomics.PreprocessorInfo) string
}

func (s *stubAPI) SetDbID(id string) { s.dbID = id }
func (s *stubAPI) DbID() string      { return s.dbID }

func (s *stubAPI) GetAccounts(context.Context) feedonomics.Result[[]feedonomics.Account] {
	return call("GetAccounts", s.getAccounts)
}

func (s *stubAPI) CreateBigCommerceAccount(_ context.Context, req feedonomics.BigCommerceAccountRequest) feedonomics.Result[feedonomics.Account] {
	return call1("CreateBigCommerceAccount", s.createBigCommerceAccount, req)
}

func (s *stubAPI) InviteUser(_ context.Context, accountID string, invite feedonomics.UserInvite) feedonomics.Result[feedonomics.UserInvite] {
	return call2("InviteUser", s.inviteUser, accountID, invite)
}

func (s *stubAPI) CreateDatabase(_ context.Context, accountID, name string) feedonomics.Result[feedonomics.Database] {
	return call2("CreateDatabase", s.createDatabase, accountID, name)
}

func (s *stubAPI) GetGroups(_ context.Context, accountID string) feedonomics.Result[[]feedonomics.Group] {
	return call1("GetGroups", s.getGroups, accountID)
}

func (s *stubAPI) CreateGroup(_ context.Context, accountID, name string) feedonomics.Result[feedonomics.Group] {
	return call2("CreateGroup", s.createGroup, accountID, name)
}

func (s *stubAPI) MoveDatabaseToGroup(_ context.Context, dbID, groupID string) feedonomics.Result[feedonomics.Database] {
	return call2("MoveDatabaseToGroup", s.moveDatabaseToGroup, dbID, groupID)
}

func (s *stubAPI) GetVaultEntries(context.Context) feedonomics.Result[[]feedonomics.VaultEntry] {
	return call("GetVaultEntries", s.getVaultEntries)
}

func (s *stubAPI) UpdateVaultEntry(_ context.Context, entryID string, entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry] {
	return call2("UpdateVaultEntry", s.updateVaultEntry, entryID, entry)
}

func (s *stubAPI) DeleteVaultEntry(_ context.Context, entryID string) feedonomics.Result[struct{}] {
	return call1("DeleteVaultEntry", s.deleteVaultEntry, entryID)
}

func (s *stubAPI) CreateDbVaultEntry(_ context.Context, entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry] {
	return call1("CreateDbVaultEntry", s.createDbVaultEntry, entry)
}

func (s *stubAPI) GetImports(context.Context) feedonomics.Result[[]feedonomics.Import] {
	return call("GetImports", s.getImports)
}

func (s *stubAPI) CreateImport(_ context.Context, imp feedonomics.Import) feedonomics.Result[feedonomics.Import] {
	return call1("CreateImport", s.createImport, imp)
}

func (s *stubAPI) UpdateImport(_ context.Context, importID string, imp feedonomics.Import) feedonomics.Result[feedonomics.Import] {
	return call2("UpdateImport", s.updateImport, importID, imp)
}

func (s *stubAPI) SetImportSchedule(_ context.Context, importID string, sched feedonomics.Schedule) feedonomics.Result[feedonomics.Schedule] {
	return call2("SetImportSchedule", s.setImportSchedule, importID, sched)
}

func (s *stubAPI) GetJoinImports(context.Context) feedonomics.Result[[]feedonomics.Import] {
	return call("GetJoinImports", s.getJoinImports)
}

func (s *stubAPI) CreateJoinImport(_ context.Context, imp feedonomics.Import) feedonomics.Result[feedonomics.Import] {
	return call1("CreateJoinImport", s.createJoinImport, imp)
}

func (s *stubAPI) GetExports(context.Context) feedonomics.Result[[]feedonomics.Export] {
	return call("GetExports", s.getExports)
}

func (s *stubAPI) CreateExport(_ context.Context, exp feedonomics.Export) feedonomics.Result[feedonomics.Export] {
	return call1("CreateExport", s.createExport, exp)
}

func (s *stubAPI) UpdateExport(_ context.Context, exportID string, exp feedonomics.Export) feedonomics.Result[feedonomics.Export] {
	return call2("UpdateExport", s.updateExport, exportID, exp)
}

func (s *stubAPI) ApplyBuildTemplate(_ context.Context, template string) feedonomics.Result[struct{}] {
	return call1("ApplyBuildTemplate", s.applyBuildTemplate, template)
}

func (s *stubAPI) BuildPreprocessorURL(info feedonomics.PreprocessorInfo) string {
	if s.buildPreprocessorURL == nil {
		panic("unexpected call to BuildPreprocessorURL")
	}
	return s.buildPreprocessorURL(info)
}

func call[R any](name string, fn func() R) R {
	if fn == nil {
		panic(fmt.Sprintf("unexpected call to %s", name))
	}
	return fn()
}

func call1[A, R any](name string, fn func(A) R, a A) R {
	if fn == nil {
		panic(fmt.Sprintf("unexpected call to %s", name))
	}
	return fn(a)
}

func call2[A, B, R any](name string, fn func(A, B) R, a A, b B) R {
	if fn == nil {
		panic(fmt.Sprintf("unexpected call to %s", name))
	}
	return fn(a, b)
}

func okList[T any](items []T) feedonomics.Result[[]T] {
	return feedonomics.Result[[]T]{Success: true, Data: items, Status: 200}
}

func okOne[T any](item T) feedonomics.Result[T] {
	return feedonomics.Result[T]{Success: true, Data: item, Status: 200}
}

func failed[T any](msg string) feedonomics.Result[T] {
	return feedonomics.Result[T]{Error: msg, Status: 500}
}
