package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_FreshRegistryEachCall(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})

	BooksFormattedTotal.WithLabelValues("inline", "USD").Inc()
	families, err := Init().Gather()
	assert.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "books_formatted_total")
}
