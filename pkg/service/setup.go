package service

import (
	"context"
	"fmt"

	feedonomics "github.com/feedonomics/feedonomics-go/pkg/client"
)

// SetupParams drives the BigCommerce integration setup workflow. StoreID,
// StoreHash, and AccessToken are required; the remaining fields each enable
// an optional step and are skipped entirely when empty.
type SetupParams struct {
	StoreID     string
	StoreHash   string
	AccessToken string

	// UserEmail, when set, invites that user to the new account.
	UserEmail string
	// GroupName, when set, ensures a database group and moves the new
	// database into it.
	GroupName string
	// Schedule, when set, attaches a cron trigger to the import.
	Schedule *feedonomics.Schedule
	// BuildTemplate, when set, applies that automate build template to the
	// new database.
	BuildTemplate string
}

// SetupSummary reports every identifier produced by the workflow's steps and
// which optional steps actually ran.
type SetupSummary struct {
	AccountID    string `json:"account_id"`
	DatabaseID   string `json:"db_id"`
	GroupID      string `json:"group_id,omitempty"`
	VaultEntryID string `json:"vault_entry_id"`
	ImportID     string `json:"import_id"`

	UserInvited     bool `json:"user_invited"`
	MovedToGroup    bool `json:"moved_to_group"`
	ScheduleSet     bool `json:"schedule_set"`
	TemplateApplied bool `json:"template_applied"`
}

// SetupBigCommerceIntegration provisions a BigCommerce integration end to
// end: account, optional user invite, database, optional group move, vault
// entry, import wired to the preprocessor through the vault placeholder,
// optional schedule, optional build template.
//
// Steps run strictly in order; the first failing step returns immediately
// with a stage label and completed steps are never rolled back. A panic
// anywhere in the sequence is converted at this boundary into a failure
// envelope so callers can tell an unexpected condition apart from a reported
// step failure.
func (s *Service) SetupBigCommerceIntegration(ctx context.Context, params SetupParams) (res feedonomics.Result[SetupSummary]) {
	defer func() {
		if r := recover(); r != nil {
			res = feedonomics.Result[SetupSummary]{
				Error: fmt.Sprintf("BigCommerce setup failed: %v", r),
			}
		}
	}()

	var summary SetupSummary

	acct := s.EnsureAccount(ctx, params.StoreID, params.StoreHash, params.AccessToken)
	if !acct.Success {
		return relabel[SetupSummary]("Failed to create account:", acct)
	}
	summary.AccountID = acct.Data.ID

	if params.UserEmail != "" {
		invited := s.api.InviteUser(ctx, acct.Data.ID, feedonomics.UserInvite{Email: params.UserEmail})
		if !invited.Success {
			return relabel[SetupSummary]("Failed to invite user:", invited)
		}
		summary.UserInvited = true
	}

	db := s.api.CreateDatabase(ctx, acct.Data.ID, AccountNamePrefix+params.StoreID)
	if !db.Success {
		return relabel[SetupSummary]("Failed to create database:", db)
	}
	summary.DatabaseID = db.Data.ID

	if params.GroupName != "" {
		grp := s.EnsureGroup(ctx, acct.Data.ID, params.GroupName)
		if !grp.Success {
			return relabel[SetupSummary]("Failed to move database to group:", grp)
		}
		moved := s.api.MoveDatabaseToGroup(ctx, db.Data.ID, grp.Data.ID)
		if !moved.Success {
			return relabel[SetupSummary]("Failed to move database to group:", moved)
		}
		summary.GroupID = grp.Data.ID
		summary.MovedToGroup = true
	}

	// Remaining steps are scoped to the database created above.
	s.api.SetDbID(db.Data.ID)

	vault := s.EnsureVaultEntry(ctx, feedonomics.VaultEntry{
		BaseType: feedonomics.BaseType{Name: VaultEntryName},
		Value: map[string]string{
			"store_hash":   params.StoreHash,
			"access_token": params.AccessToken,
		},
	})
	if !vault.Success {
		return relabel[SetupSummary]("Failed to store credentials:", vault)
	}
	summary.VaultEntryID = vault.Data.ID

	// The import's connection carries the vault placeholder, not the raw
	// token; the vendor interpolates the stored credential at import time.
	url := s.api.BuildPreprocessorURL(feedonomics.PreprocessorInfo{
		ConnectionInfo: feedonomics.PreprocessorConnection{
			AccessToken: feedonomics.String(VaultPlaceholder),
			StoreHash:   feedonomics.String(params.StoreHash),
		},
	})
	imp := s.EnsureImport(ctx, feedonomics.Import{
		BaseType:     feedonomics.BaseType{Name: ImportName},
		FileLocation: "preprocess_script",
		URL:          url,
	})
	if !imp.Success {
		return relabel[SetupSummary]("Failed to create import:", imp)
	}
	summary.ImportID = imp.Data.ID

	if params.Schedule != nil {
		sched := s.api.SetImportSchedule(ctx, imp.Data.ID, *params.Schedule)
		if !sched.Success {
			return relabel[SetupSummary]("Failed to set import schedule:", sched)
		}
		summary.ScheduleSet = true
	}

	if params.BuildTemplate != "" {
		applied := s.api.ApplyBuildTemplate(ctx, params.BuildTemplate)
		if !applied.Success {
			return relabel[SetupSummary]("Failed to apply build template:", applied)
		}
		summary.TemplateApplied = true
	}

	return succeed(summary, 0)
}
