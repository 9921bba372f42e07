package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"etc_takeoffs/internal/domain/entities"
	"etc_takeoffs/internal/usecase"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) showCmd() *cobra.Command {
	var withItems bool
	cmd := &cobra.Command{
		Use:   "show <takeoff-id>",
		Short: "Show a takeoff and what can be done with it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			form := s.Form()
			bold := color.New(color.Bold).SprintFunc()

			fmt.Fprintf(out, "%s %s\n", bold(form.Title), color.HiBlackString("(%s)", s.ID()))
			fmt.Fprintf(out, "  Work type:   %s\n", form.WorkType.Label())
			fmt.Fprintf(out, "  Status:      %s\n", statusString(s.Status()))
			fmt.Fprintf(out, "  Destination: %s\n", form.WorkType.Destination().Label())
			fmt.Fprintf(out, "  Revision:    %d\n", s.RevisionNumber())
			if from := s.RevisedFromID(); from != "" {
				fmt.Fprintf(out, "  Revised from: %s\n", from)
			}
			if s.ManufacturingStarted() {
				fmt.Fprintf(out, "  %s\n", color.YellowString("Manufacturing has started"))
			}
			if wo := s.LinkedWorkOrder(); wo != nil {
				fmt.Fprintf(out, "  Work order:  %s\n", wo.Number)
			}

			items := s.Payload()
			fmt.Fprintf(out, "  Items:       %d\n", usecase.CountSubmittableItems(items))
			if withItems {
				printItems(out, items)
			}
			if s.CanReopen() {
				fmt.Fprintln(out, color.CyanString("  Can be reopened"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withItems, "items", false, "list the takeoff items")
	return cmd
}

func (a *app) createCmd() *cobra.Command {
	var (
		file   string
		submit bool
	)
	cmd := &cobra.Command{
		Use:   "create -f <form.json>",
		Short: "Save a new takeoff from a form file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := readForm(file)
			if err != nil {
				return err
			}
			s := usecase.NewTakeoffSession(a.gateway, a.catalog, form.WorkType)
			if err := s.Update(func(f *entities.TakeoffForm) { *f = form }); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if submit {
				if err := s.Submit(cmd.Context()); err != nil {
					if s.ID() != "" {
						fmt.Fprintf(out, "Saved %s but not submitted\n", s.ID())
					}
					return err
				}
				fmt.Fprintf(out, "Takeoff %s submitted: %s\n", s.ID(), statusString(s.Status()))
				return nil
			}
			if err := s.Save(cmd.Context()); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(out, "Takeoff %s saved\n", s.ID())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "takeoff form JSON file")
	cmd.Flags().BoolVar(&submit, "submit", false, "submit to the work type's shop after saving")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) previewCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "preview -f <form.json>",
		Short: "Show the items a form would save, without saving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := readForm(file)
			if err != nil {
				return err
			}
			aggregator := usecase.NewItemAggregator(a.catalog)
			items := aggregator.BuildItemPayloads(form.WorkType, form.DefaultMaterial, form.Rows)
			if qty := aggregator.SandbagQuantity(form.WorkType, form.Rows); qty > 0 {
				items = append(items, usecase.AutoSandbagItem(qty))
			}

			out := cmd.OutOrStdout()
			dest := form.WorkType.Destination()
			fmt.Fprintf(out, "Routes to the %s\n", dest.Label())
			printItems(out, items)

			if problem := usecase.NewSubmissionValidator(a.catalog).CheckSubmission(dest, form.WorkType, form.Rows, items); problem != nil {
				fmt.Fprintln(out, color.YellowString("Not ready to submit: %s", problem.Message))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "takeoff form JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readForm(path string) (entities.TakeoffForm, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return entities.TakeoffForm{}, err
	}
	var form entities.TakeoffForm
	if err := json.Unmarshal(b, &form); err != nil {
		return entities.TakeoffForm{}, fmt.Errorf("json form parsing error: %w", err)
	}
	if !form.WorkType.Valid() {
		return entities.TakeoffForm{}, fmt.Errorf("%w: %q", usecase.ErrInvalidWorkType, form.WorkType)
	}
	return form, nil
}

func printItems(w io.Writer, items []entities.TakeoffItem) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tCATEGORY\tQTY\tUNIT")
	for _, it := range items {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\n", it.Name, it.Category, it.Quantity, it.Unit)
	}
	_ = tw.Flush()
}
