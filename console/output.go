package console

import (
	"context"
	"fmt"
	"io"

	fx "go-fx-exchange"
	"go-fx-exchange/rates"
)

// Output renders Results as human readable text
type Output struct {
	// w destination for rendered text
	w io.Writer

	// rates to list the supported currencies on unknown-currency errors
	rates rates.Service
}

// NewOutput constructs a valid Output writing to w
func NewOutput(w io.Writer, r rates.Service) *Output {
	return &Output{
		w:     w,
		rates: r,
	}
}

// ShowUsage prints the one-line usage summary
func (o *Output) ShowUsage() {
	fmt.Fprintln(o.w, "Usage: Exchange <currency_pair> <amount>")
}

// ShowResult renders one Result followed by a blank line. Amounts are shown
// with two decimal digits, converted amounts with four.
func (o *Output) ShowResult(ctx context.Context, result fx.Result) {
	switch r := result.(type) {
	case fx.Success:
		fmt.Fprintf(o.w, "%v %v = %v %v\n",
			r.OriginalAmount.StringFixed(2),
			r.MainCurrency,
			r.ConvertedAmount.StringFixed(4),
			r.MoneyCurrency,
		)
		fmt.Fprintln(o.w)
	case fx.InvalidFormat:
		fmt.Fprintf(o.w, "Error: %v\n", r.Message)
		fmt.Fprintln(o.w)
	case fx.CurrencyNotFound:
		fmt.Fprintf(o.w, "Error: Currency '%v' is not supported.\n", r.Code)
		fmt.Fprintln(o.w)
		o.showSupportedCurrencies(ctx)
	case fx.GeneralError:
		fmt.Fprintf(o.w, "Error: %v\n", r.Message)
		fmt.Fprintln(o.w)
	}
}

func (o *Output) showSupportedCurrencies(ctx context.Context) {
	supported, err := o.rates.Supported(ctx)
	if err != nil {
		return
	}
	fmt.Fprintln(o.w, "Supported currencies:")
	for _, rate := range supported {
		fmt.Fprintf(o.w, "  %v - %v\n", rate.Currency.IsoCode, rate.Currency.Name)
	}
}
