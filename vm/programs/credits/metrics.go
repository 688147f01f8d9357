package credits

import "github.com/aicredit/go-aicredit/metrics"

const namespace = "credits"

var (
	creditedTotal = metrics.NewCounter(
		"credited",
		namespace,
		"total amount of credits added to user accounts",
		[]string{},
	).WithLabelValues()
	updatesTotal = metrics.NewCounter(
		"updates",
		namespace,
		"number of user accounts updates",
		[]string{"initialized"},
	)
	firstUpdates  = updatesTotal.WithLabelValues("first")
	repeatUpdates = updatesTotal.WithLabelValues("repeat")
)
