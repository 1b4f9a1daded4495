// Package cli exposes the delivery cost use case as cobra commands.
package cli

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"deliverycost/internal/core/application/orderfactory"
	"deliverycost/internal/core/application/usecases/commands"
	"deliverycost/internal/core/domain/model/order"
	"deliverycost/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

//go:embed order.json
var sampleOrder []byte

// Flag names of the calculate command.
const (
	FlagFile        = "file"
	FlagWeight      = "weight"
	FlagTotalPrice  = "totalPrice"
	FlagCountryCode = "countryCode"
	FlagCreatedAt   = "createdAt"
)

const summaryTimeLayout = "2006-01-02 15:04:05"

type calculateFlags struct {
	File        string `flag:"file"`
	Weight      string `flag:"weight"      validate:"omitempty,numeric"`
	TotalPrice  string `flag:"totalPrice"  validate:"omitempty,numeric"`
	CountryCode string `flag:"countryCode" validate:"omitempty,printascii"`
	CreatedAt   string `flag:"createdAt"   validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

var flagValidator = newFlagValidator()

func newFlagValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("flag")
	})
	return v
}

// NewCalculateCommand creates the "calculate" command. It loads an order from
// defaultFile, or from the embedded sample order when defaultFile is empty, applies
// flag overrides and prints the quote together with its per-rule breakdown.
func NewCalculateCommand(
	orders orderfactory.OrderFactory,
	handler *commands.CalculateDeliveryCostCommandHandler,
	defaultFile string,
) *cobra.Command {
	var flags calculateFlags

	command := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the delivery cost of an order",
		Example: "  deliverycost calculate --countryCode=USA --totalPrice=500 " +
			"--createdAt=2026-02-12T16:30:00Z",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, flags, orders, handler)
		},
	}

	command.Flags().StringVarP(&flags.File, FlagFile, "f", defaultFile, "order JSON file (default: built-in sample order)")
	command.Flags().StringVarP(&flags.Weight, FlagWeight, "w", "", "weight in kg")
	command.Flags().StringVarP(&flags.TotalPrice, FlagTotalPrice, "p", "", "cart total")
	command.Flags().StringVarP(&flags.CountryCode, FlagCountryCode, "c", "", "country code, e.g. PL, DE, USA")
	command.Flags().StringVarP(&flags.CreatedAt, FlagCreatedAt, "a", "", "order date and time (YYYY-MM-DDTHH:MM:SSZ)")

	return command
}

func runCalculate(
	cmd *cobra.Command,
	flags calculateFlags,
	orders orderfactory.OrderFactory,
	handler *commands.CalculateDeliveryCostCommandHandler,
) error {
	if err := validateFlags(flags); err != nil {
		return err
	}

	data, err := loadOrderData(flags.File)
	if err != nil {
		return err
	}

	overrides := map[string]string{
		FlagWeight:      flags.Weight,
		FlagTotalPrice:  flags.TotalPrice,
		FlagCountryCode: flags.CountryCode,
		FlagCreatedAt:   flags.CreatedAt,
	}
	for name, value := range overrides {
		if cmd.Flags().Changed(name) {
			data[name] = value
		}
	}

	out := cmd.OutOrStdout()
	printUsage(out)

	if err = printJSON(out, data); err != nil {
		return err
	}

	o, err := orders.Create(data)
	if err != nil {
		return err
	}
	printSummary(out, o)

	command, err := commands.NewCalculateDeliveryCostCommand(o)
	if err != nil {
		return err
	}

	result, err := handler.Handle(cmd.Context(), command)
	if err != nil {
		return err
	}

	section(out, "Breakdown")
	for _, step := range result.Steps {
		status := "applied"
		if !step.Applied {
			status = "skipped"
		}
		fmt.Fprintf(out, " * [%d] %s: %s, running total %s\n", step.Priority, step.Label, status, step.Amount.Formatted())
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, " Quote ID: %s\n", result.QuoteID)
	fmt.Fprintf(out, " [OK] Calculation result: %s\n", result.Cost.Formatted())

	return nil
}

func validateFlags(flags calculateFlags) error {
	err := flagValidator.Struct(flags)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	joined := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
			"--"+fe.Field(),
			fmt.Errorf("%q does not satisfy %q", fe.Value(), fe.ActualTag()),
		))
	}
	return errors.Join(joined...)
}

func loadOrderData(path string) (map[string]any, error) {
	raw := sampleOrder
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read order file: %w", err)
		}
		raw = content
	}

	var data map[string]any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode order file: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}

	return data, nil
}

func section(out io.Writer, title string) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, string(bytes.Repeat([]byte("-"), len(title))))
	fmt.Fprintln(out)
}

func printUsage(out io.Writer) {
	section(out, "Usage")
	fmt.Fprintln(out, " Order data is loaded from the order file. You can override selected fields with options:")
	fmt.Fprintln(out, " Order items are not used in the calculation.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, " * --weight, -w       weight in kg")
	fmt.Fprintln(out, " * --totalPrice, -p   cart total")
	fmt.Fprintln(out, " * --countryCode, -c  country code, e.g. PL, DE, USA")
	fmt.Fprintln(out, " * --createdAt, -a    order date and time (YYYY-MM-DDTHH:MM:SSZ)")
	fmt.Fprintln(out)
	fmt.Fprintln(out, " Example: deliverycost calculate --countryCode=USA --totalPrice=500 --createdAt=2026-02-12T16:30:00Z")
	fmt.Fprintln(out)
}

func printJSON(out io.Writer, data map[string]any) error {
	section(out, "JSON content")

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	fmt.Fprintln(out)

	return nil
}

func printSummary(out io.Writer, o *order.Order) {
	createdAt := o.CreatedAt()

	section(out, "Order summary")
	fmt.Fprintf(out, " * Weight: %s kg\n", o.Weight())
	fmt.Fprintf(out, " * Total price: %s\n", o.TotalPrice().Formatted())
	fmt.Fprintf(out, " * Country: %s\n", o.CountryCode())
	fmt.Fprintf(out, " * Created at: %s (day of week: %s)\n", createdAt.Format(summaryTimeLayout), createdAt.Weekday())
	fmt.Fprintln(out)
}
