package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/theme"
)

func TestEveryEnumHasALabel(t *testing.T) {
	for _, s := range []model.Status{model.StatusUnread, model.StatusRead, model.StatusUrgent} {
		assert.NotEqual(t, string(s), theme.StatusLabel(s), "status %s", s)
	}
	for _, c := range model.Categories {
		assert.NotEmpty(t, theme.CategoryBadge(c))
	}
	for _, f := range model.CategoryFilters {
		assert.NotEqual(t, string(f), theme.CategoryLabel(f), "category filter %s", f)
	}
	for _, f := range model.StatusFilters {
		assert.NotEqual(t, string(f), theme.StatusFilterLabel(f), "status filter %s", f)
	}
}

func TestUnknownValuesFallBackToRawName(t *testing.T) {
	assert.Equal(t, "legal", theme.CategoryLabel(model.CategoryFilter("legal")))
	assert.Equal(t, "archived", theme.StatusLabel(model.Status("archived")))
	assert.Equal(t, "All", theme.StatusFilterLabel(""))
}
