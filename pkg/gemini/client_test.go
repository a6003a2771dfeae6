package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutriscan-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeGeminiServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{
							{"text": payload},
						},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestAnalyzeScannedText(t *testing.T) {
	payload := `{"foodName":"Banana","nutrition":{"calories":105,"protein":1.3,"carbs":27,"fats":0.4},"recommendation":"Should Eat","servingSize":"1 medium banana","reason":"Good source of quick energy."}`
	srv := fakeGeminiServer(t, payload)
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "test-key", "test-model")
	info, err := c.AnalyzeScannedText(context.Background(), "banana barcode", ProfileSummary{Age: 30})
	require.NoError(t, err)
	assert.Equal(t, "Banana", info.FoodName)
	assert.Equal(t, 105.0, info.Nutrition.Calories)
	assert.Equal(t, domain.RecommendationShouldEat, info.Recommendation)
}

func TestAnalyzeScannedTextStripsMarkdownFences(t *testing.T) {
	payload := "```json\n{\"foodName\":\"Apple\",\"nutrition\":{\"calories\":95,\"protein\":0.5,\"carbs\":25,\"fats\":0.3},\"recommendation\":\"Should Eat\",\"servingSize\":\"1 apple\",\"reason\":\"Rich in fiber.\"}\n```"
	srv := fakeGeminiServer(t, payload)
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "test-key", "test-model")
	info, err := c.AnalyzeScannedText(context.Background(), "apple", ProfileSummary{})
	require.NoError(t, err)
	assert.Equal(t, "Apple", info.FoodName)
}

func TestAnalyzeScannedTextRejectsUnknownRecommendation(t *testing.T) {
	payload := `{"foodName":"Mystery","nutrition":{"calories":10,"protein":1,"carbs":1,"fats":1},"recommendation":"Maybe","servingSize":"1","reason":"x"}`
	srv := fakeGeminiServer(t, payload)
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "test-key", "test-model")
	_, err := c.AnalyzeScannedText(context.Background(), "mystery", ProfileSummary{})
	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
}

func TestGenerateMealPlanRejectsShortWeek(t *testing.T) {
	payload := `{"weeklyPlan":[{"day":"Monday","breakfast":{"name":"Oats","description":"x"},"lunch":{"name":"Dal","description":"x"},"dinner":{"name":"Curry","description":"x"}}]}`
	srv := fakeGeminiServer(t, payload)
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "test-key", "test-model")
	_, err := c.GenerateMealPlan(context.Background(), ProfileSummary{})
	assert.ErrorIs(t, err, domain.ErrMalformedPlan)
}

func TestTranslateTextsPadsShortResults(t *testing.T) {
	payload := `{"translations":["केला"]}`
	srv := fakeGeminiServer(t, payload)
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "test-key", "test-model")
	out, err := c.TranslateTexts(context.Background(), []string{"Banana", "Apple", "Mango"}, "Hindi")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "केला", out[0])
	assert.Empty(t, out[1])
	assert.Empty(t, out[2])
}

func TestTranslateTextsEmptyInput(t *testing.T) {
	c := NewClientWithBaseURL("http://unused", "test-key", "test-model")
	out, err := c.TranslateTexts(context.Background(), nil, "Hindi")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"Here you go:\n{\"a\":1}\nEnjoy!", `{"a":1}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, extractJSON(tc.in))
	}
}

func TestGenerateErrorsWithoutAPIKey(t *testing.T) {
	c := NewClientWithBaseURL("http://unused", "", "test-model")
	_, err := c.AnalyzeScannedText(context.Background(), "banana", ProfileSummary{})
	assert.Error(t, err)
}

func sseChunk(text string) string {
	return fmt.Sprintf(`data: {"candidates":[{"content":{"parts":[{"text":%q}]}}]}`+"\n\n", text)
}

func TestStreamChatDeliversChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.Path, "streamGenerateContent")
		flusher := w.(http.Flusher)
		fmt.Fprint(w, sseChunk("Hello"))
		flusher.Flush()
		fmt.Fprint(w, sseChunk(" there"))
		flusher.Flush()
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "test-key", "test-model")
	var got []string
	err := c.StreamChat(context.Background(), "system", nil, "hi", func(text string) error {
		got = append(got, text)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", " there"}, got)
}

func TestStreamChatStopsWhenContextCancelled(t *testing.T) {
	serverDone := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(serverDone)
		flusher := w.(http.Flusher)
		fmt.Fprint(w, sseChunk("partial"))
		flusher.Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewClientWithBaseURL(srv.URL, "test-key", "test-model")
	err := c.StreamChat(ctx, "system", nil, "hi", func(text string) error {
		cancel()
		return nil
	})
	assert.Error(t, err)

	select {
	case <-serverDone:
	case <-time.After(5 * time.Second):
		t.Fatal("upstream request kept running after cancellation")
	}
}
