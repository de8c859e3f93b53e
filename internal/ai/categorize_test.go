package ai

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"warta/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_OnlyGeneralArticlesAreSent(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"choices":[{"message":{"content":"economy"}}]}`))
	})

	articles := []model.Article{
		{ID: "1", Title: "Already tagged", Category: model.CategoryPolitics},
		{ID: "2", Title: "Untagged one", Category: model.CategoryGeneral},
		{ID: "3", Title: "Untagged two", Category: model.CategoryGeneral},
	}

	out := client.Categorize(context.Background(), articles)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, model.CategoryPolitics, out[0].Category, "already-categorized articles stay untouched")
	assert.Equal(t, model.CategoryEconomy, out[1].Category)
	assert.Equal(t, model.CategoryEconomy, out[2].Category)
}

func TestCategorize_InvalidReplyLeavesOriginal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"sports"}}]}`))
	})

	out := client.Categorize(context.Background(), []model.Article{
		{ID: "1", Category: model.CategoryGeneral},
	})

	assert.Equal(t, model.CategoryGeneral, out[0].Category)
}

func TestCategorize_ProviderFailureLeavesOriginal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	out := client.Categorize(context.Background(), []model.Article{
		{ID: "1", Category: model.CategoryGeneral},
	})

	assert.Equal(t, model.CategoryGeneral, out[0].Category)
}

func TestCategorize_DoesNotMutateInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"social"}}]}`))
	})

	in := []model.Article{{ID: "1", Category: model.CategoryGeneral}}
	out := client.Categorize(context.Background(), in)

	assert.Equal(t, model.CategoryGeneral, in[0].Category)
	assert.Equal(t, model.CategorySocial, out[0].Category)
}
