package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	feedonomics "github.com/feedonomics/feedonomics-go/pkg/client"
)

// fullStub returns a stub where every step of the setup workflow succeeds
// against an empty remote state.
func fullStub(t *testing.T) *stubAPI {
	t.Helper()
	return &stubAPI{
		getAccounts: func() feedonomics.Result[[]feedonomics.Account] {
			return okList([]feedonomics.Account{})
		},
		createBigCommerceAccount: func(req feedonomics.BigCommerceAccountRequest) feedonomics.Result[feedonomics.Account] {
			return okOne(account("acct-1", req.AccountName))
		},
		createDatabase: func(accountID, name string) feedonomics.Result[feedonomics.Database] {
			require.Equal(t, "acct-1", accountID)
			return okOne(feedonomics.Database{BaseType: feedonomics.BaseType{ID: "db-1", Name: name}})
		},
		getVaultEntries: func() feedonomics.Result[[]feedonomics.VaultEntry] {
			return okList([]feedonomics.VaultEntry{})
		},
		createDbVaultEntry: func(entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry] {
			entry.ID = "vault-1"
			return okOne(entry)
		},
		getImports: func() feedonomics.Result[[]feedonomics.Import] {
			return okList([]feedonomics.Import{})
		},
		createImport: func(in feedonomics.Import) feedonomics.Result[feedonomics.Import] {
			in.ID = "imp-1"
			return okOne(in)
		},
		buildPreprocessorURL: func(info feedonomics.PreprocessorInfo) string {
			require.Equal(t, VaultPlaceholder, *info.ConnectionInfo.AccessToken)
			return "https://preprocess.example/run"
		},
	}
}

func TestSetupSkipsOptionalSteps(t *testing.T) {
	api := fullStub(t)
	// inviteUser, group, schedule, and template funcs stay nil: invoking a
	// skipped step panics the stub and fails the assertions below.

	res := New(api).SetupBigCommerceIntegration(context.Background(), SetupParams{
		StoreID:     "alpha",
		StoreHash:   "hash",
		AccessToken: "token",
	})

	require.True(t, res.Success, res.Error)
	require.Equal(t, SetupSummary{
		AccountID:    "acct-1",
		DatabaseID:   "db-1",
		VaultEntryID: "vault-1",
		ImportID:     "imp-1",
	}, res.Data)
	require.Equal(t, "db-1", api.DbID(), "workflow must scope the session to the new database")
}

func TestSetupRunsOptionalSteps(t *testing.T) {
	api := fullStub(t)
	api.inviteUser = func(accountID string, invite feedonomics.UserInvite) feedonomics.Result[feedonomics.UserInvite] {
		require.Equal(t, "acct-1", accountID)
		require.Equal(t, "ops@example.com", invite.Email)
		return okOne(invite)
	}
	api.getGroups = func(accountID string) feedonomics.Result[[]feedonomics.Group] {
		return okList([]feedonomics.Group{})
	}
	api.createGroup = func(accountID, name string) feedonomics.Result[feedonomics.Group] {
		require.Equal(t, "Stores", name)
		return okOne(group("grp-1", name))
	}
	api.moveDatabaseToGroup = func(dbID, groupID string) feedonomics.Result[feedonomics.Database] {
		require.Equal(t, "db-1", dbID)
		require.Equal(t, "grp-1", groupID)
		return okOne(feedonomics.Database{BaseType: feedonomics.BaseType{ID: dbID}})
	}
	api.setImportSchedule = func(importID string, sched feedonomics.Schedule) feedonomics.Result[feedonomics.Schedule] {
		require.Equal(t, "imp-1", importID)
		require.Equal(t, feedonomics.Schedule{Day: "*", Hour: "*/4", Minute: "0"}, sched)
		return okOne(sched)
	}
	api.applyBuildTemplate = func(template string) feedonomics.Result[struct{}] {
		require.Equal(t, "bigcommerce_default", template)
		return okOne(struct{}{})
	}

	res := New(api).SetupBigCommerceIntegration(context.Background(), SetupParams{
		StoreID:       "alpha",
		StoreHash:     "hash",
		AccessToken:   "token",
		UserEmail:     "ops@example.com",
		GroupName:     "Stores",
		Schedule:      &feedonomics.Schedule{Day: "*", Hour: "*/4", Minute: "0"},
		BuildTemplate: "bigcommerce_default",
	})

	require.True(t, res.Success, res.Error)
	require.Equal(t, SetupSummary{
		AccountID:       "acct-1",
		DatabaseID:      "db-1",
		GroupID:         "grp-1",
		VaultEntryID:    "vault-1",
		ImportID:        "imp-1",
		UserInvited:     true,
		MovedToGroup:    true,
		ScheduleSet:     true,
		TemplateApplied: true,
	}, res.Data)
}

func TestSetupFirstStepFailureShortCircuits(t *testing.T) {
	api := &stubAPI{
		getAccounts: func() feedonomics.Result[[]feedonomics.Account] {
			return failed[[]feedonomics.Account]("unauthorized")
		},
		// Every other func is nil: any further step would panic and surface
		// as a setup-failed message instead of the expected label.
	}

	res := New(api).SetupBigCommerceIntegration(context.Background(), SetupParams{
		StoreID:     "alpha",
		StoreHash:   "hash",
		AccessToken: "token",
	})

	require.False(t, res.Success)
	require.Contains(t, res.Error, "Failed to create account:")
	require.Contains(t, res.Error, "unauthorized")
}

func TestSetupRecoversUnexpectedPanics(t *testing.T) {
	api := fullStub(t)
	api.createDatabase = func(string, string) feedonomics.Result[feedonomics.Database] {
		panic("dial tcp: connection reset")
	}

	res := New(api).SetupBigCommerceIntegration(context.Background(), SetupParams{
		StoreID:     "alpha",
		StoreHash:   "hash",
		AccessToken: "token",
	})

	require.False(t, res.Success)
	require.Equal(t, "BigCommerce setup failed: dial tcp: connection reset", res.Error)
}

func TestSetupStoresCredentialsInVault(t *testing.T) {
	api := fullStub(t)
	api.createDbVaultEntry = func(entry feedonomics.VaultEntry) feedonomics.Result[feedonomics.VaultEntry] {
		require.Equal(t, VaultEntryName, entry.Name)
		require.Equal(t, "hash", entry.Value["store_hash"])
		require.Equal(t, "token", entry.Value["access_token"])
		entry.ID = "vault-1"
		return okOne(entry)
	}
	api.createImport = func(in feedonomics.Import) feedonomics.Result[feedonomics.Import] {
		require.Equal(t, ImportName, in.Name)
		require.Equal(t, "preprocess_script", in.FileLocation)
		require.Equal(t, "https://preprocess.example/run", in.URL)
		in.ID = "imp-1"
		return okOne(in)
	}

	res := New(api).SetupBigCommerceIntegration(context.Background(), SetupParams{
		StoreID:     "alpha",
		StoreHash:   "hash",
		AccessToken: "token",
	})
	require.True(t, res.Success, res.Error)
}
