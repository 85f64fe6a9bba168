package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	feedonomics "github.com/feedonomics/feedonomics-go/pkg/client"
	"github.com/feedonomics/feedonomics-go/pkg/service"
)

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts visible to the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			return printResult(client.GetAccounts(ctx))
		},
	}
}

func newImportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imports",
		Short: "Inspect and run imports of the active database",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List imports",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx, client, err := newClient(cmd)
				if err != nil {
					return err
				}
				return printResult(client.GetImports(ctx))
			},
		},
		&cobra.Command{
			Use:   "run <import-id>",
			Short: "Trigger an import run",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, client, err := newClient(cmd)
				if err != nil {
					return err
				}
				return printResult(client.RunImport(ctx, args[0]))
			},
		},
	)

	return cmd
}

func newSetupCmd() *cobra.Command {
	var params service.SetupParams
	var day, hour, minute string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision a BigCommerce integration end to end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}

			if day != "" || hour != "" || minute != "" {
				params.Schedule = &feedonomics.Schedule{Day: day, Hour: hour, Minute: minute}
			}

			svc := service.New(client)
			return printResult(svc.SetupBigCommerceIntegration(ctx, params))
		},
	}

	cmd.Flags().StringVar(&params.StoreID, "store-id", "", "BigCommerce store identifier (required)")
	cmd.Flags().StringVar(&params.StoreHash, "store-hash", "", "BigCommerce store hash (required)")
	cmd.Flags().StringVar(&params.AccessToken, "access-token", "", "BigCommerce API access token (required)")
	cmd.Flags().StringVar(&params.UserEmail, "user-email", "", "Invite this user to the new account")
	cmd.Flags().StringVar(&params.GroupName, "group", "", "Move the new database into this group")
	cmd.Flags().StringVar(&params.BuildTemplate, "build-template", "", "Apply this automate build template")
	cmd.Flags().StringVar(&day, "schedule-day", "", "Import schedule day expression")
	cmd.Flags().StringVar(&hour, "schedule-hour", "", "Import schedule hour expression")
	cmd.Flags().StringVar(&minute, "schedule-minute", "", "Import schedule minute expression")

	_ = cmd.MarkFlagRequired("store-id")
	_ = cmd.MarkFlagRequired("store-hash")
	_ = cmd.MarkFlagRequired("access-token")

	return cmd
}

// printResult writes the success payload as JSON, or surfaces the envelope's
// message as the command error.
func printResult[T any](res feedonomics.Result[T]) error {
	if !res.Success {
		return errors.New(res.Error)
	}

	out, err := json.MarshalIndent(res.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
