package cocktail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mojitoPayload = `{
  "drinks": [{
    "idDrink": "11000",
    "strDrink": "Mojito",
    "strGlass": "Highball glass",
    "strInstructions": "Muddle mint leaves with sugar and lime juice.",
    "strInstructionsDE": "Minzblätter mit Zucker und Limettensaft muddeln.",
    "strInstructionsES": null,
    "strInstructionsZH-HANS": "捣碎",
    "strIngredient1": "Light rum",
    "strIngredient2": "Lime",
    "strIngredient3": "Mint",
    "strIngredient4": null,
    "strMeasure1": "2-3 oz ",
    "strMeasure2": "Juice of 1 ",
    "strMeasure3": null,
    "strMeasure4": null,
    "dateModified": "2016-11-04 09:17:09"
  }]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/api/json/v1", "1")
	require.NoError(t, err)
	return c
}

func TestClient_Random(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/json/v1/1/random.php", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mojitoPayload))
	})

	drinks, err := c.Random(context.Background())
	require.NoError(t, err)
	require.Len(t, drinks, 1)

	d := drinks[0]
	assert.Equal(t, "11000", d.ID)
	require.NotNil(t, d.Name)
	assert.Equal(t, "Mojito", *d.Name)
	require.NotNil(t, d.Glass)
	assert.Equal(t, "Highball glass", *d.Glass)

	en, ok := d.Instruction(LangEnglish)
	assert.True(t, ok)
	assert.Equal(t, "Muddle mint leaves with sugar and lime juice.", en)

	_, ok = d.Instruction(LangGerman)
	assert.True(t, ok)
	_, ok = d.Instruction(LangZhHans)
	assert.True(t, ok)
	_, ok = d.Instruction(LangSpanish)
	assert.False(t, ok, "null instructions are absent")

	require.Len(t, d.Ingredients, 3)
	assert.Equal(t, "Light rum", *d.Ingredients[0].Name)
	assert.Equal(t, "2-3 oz ", *d.Ingredients[0].Measure)
	assert.Equal(t, "Lime", *d.Ingredients[1].Name)
	assert.Equal(t, "Mint", *d.Ingredients[2].Name)
	assert.Nil(t, d.Ingredients[2].Measure)
}

func TestClient_RandomEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"null drinks":    `{"drinks": null}`,
		"empty drinks":   `{"drinks": []}`,
		"missing drinks": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			drinks, err := c.Random(context.Background())
			require.NoError(t, err)
			assert.Empty(t, drinks)
		})
	}
}

func TestClient_RandomStatusError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := c.Random(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestClient_RandomDecodeError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := c.Random(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestClient_RandomTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "1", WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	_, err = c.Random(context.Background())
	assert.Error(t, err)
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient("https://www.thecocktaildb.com/api/json/v1", "")
	assert.Error(t, err)

	_, err = NewClient("not a url", "1")
	assert.Error(t, err)

	c, err := NewClient("https://www.thecocktaildb.com/api/json/v1/", "1", WithHTTPClient(&http.Client{}))
	require.NoError(t, err)
	assert.Equal(t, "/api/json/v1", c.baseURL.Path)
}

func TestDrink_UnmarshalJSON_EmptyStringsArePresent(t *testing.T) {
	var d Drink
	require.NoError(t, json.Unmarshal([]byte(`{"strDrink": "", "strIngredient1": "", "strMeasure1": null, "strIngredient2": null, "strMeasure2": null}`), &d))

	require.NotNil(t, d.Name)
	assert.Equal(t, "", *d.Name)
	assert.Nil(t, d.Glass)
	require.Len(t, d.Ingredients, 1, "slots with both fields null are skipped")
	assert.Nil(t, d.Ingredients[0].Measure)
	assert.Empty(t, d.Instructions)
}
