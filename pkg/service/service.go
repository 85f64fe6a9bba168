// Package service composes the Feedonomics client into idempotent
// ensure-resource operations and the BigCommerce integration setup workflow.
// It depends only on the client's public operations, never on transport
// details.
package service

import (
	"context"

	feedonomics "github.com/feedonomics/feedonomics-go/pkg/client"
)

// Name-derivation conventions for BigCommerce integrations. Lookups assume at
// most one remote resource matches; when duplicates exist remotely the first
// match in the service's return order is used.
const (
	AccountNamePrefix    = "BigCommerce-"
	ImportName           = "BigCommerce Import"
	JoinImportName       = "BigCommerce Join Import"
	ExportName           = "BigCommerce Export"
	VaultEntryName       = "bigcommerce_api_credentials"
	LegacyVaultEntryName = "bigcommerce_token"

	// VaultPlaceholder is interpolated by the vendor at import time with the
	// stored credential value.
	VaultPlaceholder = "{{" + VaultEntryName + "}}"
)

// API is the subset of client operations the orchestration layer composes.
// *feedonomics.Client implements it.
type API interface {
	SetDbID(id string)
	DbID() string

	GetAccounts(ctx context.Context) feedonomics.Result[[]feedonomics.Account]
	CreateBigCommerceAccount(ctx context.Context, req feedonomics.BigCommerceAccountRequest) feedonomics.Result[feedonomics.Account]
	InviteUser(ctx context.Context, accountID string, invite feedonomics.UserInvite) feedonomics.Result[feedonomics.UserInvite]

	CreateDatabase(ctx context.Context, accountID, name string) feedonomics.Result[feedonomics.Database]
	GetGroups(ctx context.Context, accountID string) feedonomics.Result[[]feedonomics.Group]
	CreateGroup(ctx context.Context, accountID, name string) feedonomics.Result[feedonomics.Group]
	MoveDatabaseToGroup(ctx context.Context, dbID, groupID string) feedonomics.Result[feedonomics.Database]

	GetVaultEntries(ctx context.Context) feedonomics.Result[[]feedonomics.VaultEntry]
	UpdateVaultEntry(ctx context.Context, entryID string, entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry]
	DeleteVaultEntry(ctx context.Context, entryID string) feedonomics.Result[struct{}]
	CreateDbVaultEntry(ctx context.Context, entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry]

	GetImports(ctx context.Context) feedonomics.Result[[]feedonomics.Import]
	CreateImport(ctx context.Context, imp feedonomics.Import) feedonomics.Result[feedonomics.Import]
	UpdateImport(ctx context.Context, importID string, imp feedonomics.Import) feedonomics.Result[feedonomics.Import]
	SetImportSchedule(ctx context.Context, importID string, sched feedonomics.Schedule) feedonomics.Result[feedonomics.Schedule]
	GetJoinImports(ctx context.Context) feedonomics.Result[[]feedonomics.Import]
	CreateJoinImport(ctx context.Context, imp feedonomics.Import) feedonomics.Result[feedonomics.Import]

	GetExports(ctx context.Context) feedonomics.Result[[]feedonomics.Export]
	CreateExport(ctx context.Context, exp feedonomics.Export) feedonomics.Result[feedonomics.Export]
	UpdateExport(ctx context.Context, exportID string, exp feedonomics.Export) feedonomics.Result[feedonomics.Export]

	ApplyBuildTemplate(ctx context.Context, template string) feedonomics.Result[struct{}]

	BuildPreprocessorURL(info feedonomics.PreprocessorInfo) string
}

var _ API = (*feedonomics.Client)(nil)

// Service orchestrates multi-step operations over the Feedonomics API.
type Service struct {
	api API
}

func New(api API) *Service {
	return &Service{api: api}
}

// relabel propagates a failed result across a typed boundary with a
// stage-specific label prepended to its message.
func relabel[T, U any](label string, r feedonomics.Result[U]) feedonomics.Result[T] {
	return feedonomics.Result[T]{Error: label + " " + r.Error, Status: r.Status}
}

// succeed wraps a payload in a success envelope, keeping the status of the
// call that produced it.
func succeed[T any](data T, status int) feedonomics.Result[T] {
	return feedonomics.Result[T]{Success: true, Data: data, Status: status}
}
