package series

const (
	// NotFound is returned by index lookups that have nothing to return.
	NotFound = -1

	defaultLabel = "DataSet"

	debugStringPrecision = 3
)

func getDefaultLabel() string {
	return defaultLabel
}
