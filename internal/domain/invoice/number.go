package invoice

import (
	"fmt"
	"time"
)

const StatusPaid = "paid"

// Number builds the human readable invoice number YYYY-NNNN.
//
// NNNN is existing+1 where existing is the total number of invoices on
// record, across all years. The counter never resets on January 1st and
// shrinks when invoices are deleted, so a number can repeat across
// years or after a deletion. Kept as is: changing it would renumber the
// shop's paper trail.
func Number(now time.Time, existing int) string {
	return fmt.Sprintf("%d-%04d", now.Year(), existing+1)
}
