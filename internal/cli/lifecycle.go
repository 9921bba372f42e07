package cli

import (
	"errors"
	"fmt"
	"strings"

	"etc_takeoffs/internal/domain/entities"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func (a *app) submitCmd() *cobra.Command {
	var shop string
	cmd := &cobra.Command{
		Use:   "submit <takeoff-id>",
		Short: "Send a takeoff to its fabrication shop",
		Long: `Send a takeoff to the shop its work type routes to. Use --shop to
target a specific shop; a mismatch is rejected before anything is sent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			switch strings.ToLower(shop) {
			case "":
				err = s.Submit(cmd.Context())
			case "build":
				err = s.SubmitToBuildShop(cmd.Context())
			case "sign":
				err = s.SubmitToSignShop(cmd.Context())
			default:
				return fmt.Errorf("unknown shop %q (use build or sign)", shop)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Takeoff %s is now %s\n", s.ID(), statusString(s.Status()))
			return nil
		},
	}
	cmd.Flags().StringVar(&shop, "shop", "", "build or sign; defaults to the work type's shop")
	return cmd
}

func (a *app) cancelCmd() *cobra.Command {
	var (
		reason string
		notes  string
	)
	cmd := &cobra.Command{
		Use:   "cancel <takeoff-id>",
		Short: "Cancel a submitted takeoff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			r := entities.CancellationReason(strings.ToLower(strings.TrimSpace(reason)))
			if r == "" {
				if r, err = a.selectReason(); err != nil {
					if errors.Is(err, promptui.ErrInterrupt) {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancellation aborted.")
						return nil
					}
					return err
				}
			}
			if r.RequiresNotes(notes) {
				if notes, err = a.promptNotes(); err != nil {
					return err
				}
			}

			if err := s.Cancel(cmd.Context(), r, notes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Takeoff %s is now %s\n", s.ID(), statusString(s.Status()))
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason; prompts when omitted")
	cmd.Flags().StringVar(&notes, "notes", "", "notes, required when the reason is other")
	return cmd
}

func (a *app) reopenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <takeoff-id>",
		Short: "Return a canceled takeoff to draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := s.Reopen(cmd.Context()); err != nil {
				if entities.HasCode(err, entities.CodeManufacturingStarted) {
					fmt.Fprintln(cmd.OutOrStdout(), color.CyanString("Use `takeoffctl revise %s` instead.", s.ID()))
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Takeoff %s is now %s\n", s.ID(), statusString(s.Status()))
			return nil
		},
	}
}

func (a *app) reviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "revise <takeoff-id>",
		Aliases: []string{"revision"},
		Short:   "Create a new draft revision of a takeoff",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			res, err := s.CreateRevision(cmd.Context())
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Revision %d created: %s\n", res.RevisionNumber, res.TakeoffID)
			return nil
		},
	}
}

func (a *app) workOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "work-order <takeoff-id>",
		Short: "Generate or show the takeoff's linked work order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			ref, err := s.GenerateLinkedWorkOrder(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Work order %s (%s)\n", ref.Number, ref.ID)
			return nil
		},
	}
}

func selectReasonPrompt() (entities.CancellationReason, error) {
	reasons := entities.CancellationReasons()
	labels := make([]string, len(reasons))
	for i, r := range reasons {
		labels[i] = r.Label()
	}
	prompt := promptui.Select{
		Label: "Why is this takeoff being canceled",
		Items: labels,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return reasons[idx], nil
}

func notesPrompt() (string, error) {
	prompt := promptui.Prompt{
		Label: "Notes",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("notes are required")
			}
			return nil
		},
	}
	return prompt.Run()
}
