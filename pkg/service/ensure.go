package service

import (
	"context"
	"strings"

	feedonomics "github.com/feedonomics/feedonomics-go/pkg/client"
)

// EnsureAccount finds the account named after the store identifier, creating
// it through the BigCommerce account endpoint when absent. A found account is
// returned as-is; no update is issued.
func (s *Service) EnsureAccount(ctx context.Context, storeID, storeHash, accessToken string) feedonomics.Result[feedonomics.Account] {
	res := s.api.GetAccounts(ctx)
	if !res.Success {
		return relabel[feedonomics.Account]("Error getting accounts:", res)
	}

	name := AccountNamePrefix + storeID
	if acct, found := findByName(ctx, res.Data, accountName, exactName(name)); found {
		return succeed(acct, res.Status)
	}

	created := s.api.CreateBigCommerceAccount(ctx, feedonomics.BigCommerceAccountRequest{
		AccountName: name,
		StoreHash:   storeHash,
		AccessToken: accessToken,
	})
	if !created.Success {
		return relabel[feedonomics.Account]("Error creating account:", created)
	}
	return created
}

// EnsureGroup finds a database group whose name carries the BigCommerce
// account prefix, creating one with the given name when absent. A found group
// is returned as-is; no update is issued.
func (s *Service) EnsureGroup(ctx context.Context, accountID, name string) feedonomics.Result[feedonomics.Group] {
	res := s.api.GetGroups(ctx, accountID)
	if !res.Success {
		return relabel[feedonomics.Group]("Error getting groups:", res)
	}

	if grp, found := findByName(ctx, res.Data, groupName, hasAccountPrefix); found {
		return succeed(grp, res.Status)
	}

	created := s.api.CreateGroup(ctx, accountID, name)
	if !created.Success {
		return relabel[feedonomics.Group]("Error creating group:", created)
	}
	return created
}

// EnsureImport reconciles the import matching imp's name: when one exists it
// is updated in place (the update is always issued, with the existing
// identifier preserved) and the pre-existing record is returned; otherwise
// the import is created and the create payload returned.
func (s *Service) EnsureImport(ctx context.Context, imp feedonomics.Import) feedonomics.Result[feedonomics.Import] {
	res := s.api.GetImports(ctx)
	if !res.Success {
		return relabel[feedonomics.Import]("Error getting imports:", res)
	}

	if existing, found := findByName(ctx, res.Data, importName, exactName(imp.Name)); found {
		imp.ID = existing.ID
		updated := s.api.UpdateImport(ctx, existing.ID, imp)
		if !updated.Success {
			return relabel[feedonomics.Import]("Error updating import:", updated)
		}
		return succeed(existing, updated.Status)
	}

	created := s.api.CreateImport(ctx, imp)
	if !created.Success {
		return relabel[feedonomics.Import]("Error creating import:", created)
	}
	return created
}

// EnsureJoinImport finds the join import matching imp's name, creating it
// when absent. Join imports have no update endpoint, so a found record is
// returned unchanged.
func (s *Service) EnsureJoinImport(ctx context.Context, imp feedonomics.Import) feedonomics.Result[feedonomics.Import] {
	res := s.api.GetJoinImports(ctx)
	if !res.Success {
		return relabel[feedonomics.Import]("Error getting join imports:", res)
	}

	if existing, found := findByName(ctx, res.Data, importName, exactName(imp.Name)); found {
		return succeed(existing, res.Status)
	}

	created := s.api.CreateJoinImport(ctx, imp)
	if !created.Success {
		return relabel[feedonomics.Import]("Error creating join import:", created)
	}
	return created
}

// EnsureExport reconciles the export matching exp's name the same way
// EnsureImport does: unconditional update-in-place when found, returning the
// pre-existing record; create otherwise.
func (s *Service) EnsureExport(ctx context.Context, exp feedonomics.Export) feedonomics.Result[feedonomics.Export] {
	res := s.api.GetExports(ctx)
	if !res.Success {
		return relabel[feedonomics.Export]("Error getting exports:", res)
	}

	if existing, found := findByName(ctx, res.Data, exportName, exactName(exp.Name)); found {
		exp.ID = existing.ID
		updated := s.api.UpdateExport(ctx, existing.ID, exp)
		if !updated.Success {
			return relabel[feedonomics.Export]("Error updating export:", updated)
		}
		return succeed(existing, updated.Status)
	}

	created := s.api.CreateExport(ctx, exp)
	if !created.Success {
		return relabel[feedonomics.Export]("Error creating export:", created)
	}
	return created
}

// EnsureVaultEntry reconciles the vault entry matching entry's name. Before
// the create-or-update step it deletes any entry carrying the deprecated
// legacy name; a failed delete short-circuits the whole operation. Unlike
// imports and exports, the update branch returns the update response body.
func (s *Service) EnsureVaultEntry(ctx context.Context, entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry] {
	res := s.api.GetVaultEntries(ctx)
	if !res.Success {
		return relabel[feedonomics.VaultEntry]("Error getting vault entries:", res)
	}

	if legacy, found := findByName(ctx, res.Data, vaultEntryName, exactName(LegacyVaultEntryName)); found {
		deleted := s.api.DeleteVaultEntry(ctx, legacy.ID)
		if !deleted.Success {
			return relabel[feedonomics.VaultEntry]("Error deleting legacy vault entry:", deleted)
		}
	}

	if existing, found := findByName(ctx, res.Data, vaultEntryName, exactName(entry.Name)); found {
		updated := s.api.UpdateVaultEntry(ctx, existing.ID, entry)
		if !updated.Success {
			return relabel[feedonomics.VaultEntry]("Error updating vault entry:", updated)
		}
		return updated
	}

	created := s.api.CreateDbVaultEntry(ctx, entry)
	if !created.Success {
		return relabel[feedonomics.VaultEntry]("Error creating vault entry:", created)
	}
	return created
}

func accountName(a feedonomics.Account) string       { return a.Name }
func groupName(g feedonomics.Group) string           { return g.Name }
func importName(i feedonomics.Import) string         { return i.Name }
func exportName(e feedonomics.Export) string         { return e.Name }
func vaultEntryName(v feedonomics.VaultEntry) string { return v.Name }

func hasAccountPrefix(name string) bool {
	return strings.HasPrefix(name, AccountNamePrefix)
}
