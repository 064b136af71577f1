package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vsinha/stockcheck/pkg/application/dto"
	"github.com/vsinha/stockcheck/pkg/application/services/stock"
	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/infrastructure/events"
)

// Console prints run progress for a human, coloring stock confidence
// green for HIGH, yellow for MEDIUM and red otherwise.
type Console struct {
	out    io.Writer
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// NewConsole creates a console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		red:    color.New(color.FgRed).SprintFunc(),
	}
}

// Verify interface compliance
var (
	_ stock.ProgressObserver = (*Console)(nil)
	_ events.EventHandler    = (*Console)(nil)
)

// ProgressEvents are the event types the console renders
var ProgressEvents = []string{events.ProductResolvedEvent, events.AvailabilityResolvedEvent}

// Printf writes formatted text
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// colorFor picks the color function for a confidence level
func (c *Console) colorFor(conf entities.Confidence) func(a ...interface{}) string {
	switch conf {
	case entities.ConfidenceHigh:
		return c.green
	case entities.ConfidenceMedium:
		return c.yellow
	default:
		return c.red
	}
}

// Confidence returns the colored confidence code
func (c *Console) Confidence(conf entities.Confidence) string {
	return c.colorFor(conf)(conf.String())
}

// ProductResolved prints the article that was just looked up
func (c *Console) ProductResolved(product *entities.ProductInfo) {
	fmt.Fprintln(c.out, "Product", product.ItemCode, product.Description)
}

// AvailabilityResolved prints stock per store; sold-out stores also get
// their restock date and forecast
func (c *Console) AvailabilityResolved(_ entities.ItemCode, availability []entities.StoreAvailability) {
	for _, store := range availability {
		paint := c.colorFor(store.Confidence)
		fmt.Fprintln(c.out, "At store:", store.StoreID,
			"Qty:", paint(store.AvailableQuantity),
			"In-Stock Confidence:", paint(store.Confidence))

		if store.AvailableQuantity != 0 {
			continue
		}
		if store.RestockDate != nil {
			fmt.Fprintln(c.out, "Restock date:", store.RestockDate.Format("2006-01-02"))
		}
		if len(store.Forecast) > 0 {
			fmt.Fprintln(c.out, "Forecast:")
			for _, point := range store.Forecast {
				paint := c.colorFor(point.Confidence)
				fmt.Fprintln(c.out, point.ValidDate.Format("2006-01-02"),
					"Qty:", paint(point.ForecastQuantity),
					"Confidence:", paint(point.Confidence))
			}
		}
	}
}

func (c *Console) CanHandle(eventType string) bool {
	return eventType == events.ProductResolvedEvent || eventType == events.AvailabilityResolvedEvent
}

// Handle renders a lookup progress event
func (c *Console) Handle(event events.Event) error {
	switch data := event.Data().(type) {
	case events.ProductResolved:
		c.ProductResolved(data.Product)
	case events.AvailabilityResolved:
		c.AvailabilityResolved(data.ItemCode, data.Availability)
	default:
		return fmt.Errorf("unexpected %s payload %T", event.Type(), data)
	}
	return nil
}

// Saved reports a written report file
func (c *Console) Saved(filename string) {
	fmt.Fprintln(c.out, "Saved file", filename)
}

// Skipped lists entries dropped from the run
func (c *Console) Skipped(skipped []dto.SkippedEntry) {
	for _, s := range skipped {
		fmt.Fprintln(c.out, c.yellow(fmt.Sprintf("Skipped %s: %v", s.Entry.ItemCode, s.Err)))
	}
}

// Done prints the completion line
func (c *Console) Done() {
	fmt.Fprintln(c.out, c.green("Done."))
}

// Error prints a fatal error and the quitting notice
func (c *Console) Error(err error) {
	fmt.Fprintln(c.out, c.red(err.Error()))
	fmt.Fprintln(c.out, c.red("Quitting."))
}
