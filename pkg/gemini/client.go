package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"nutriscan-backend/domain"
	"nutriscan-backend/internal/utils"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ProfileSummary is the slice of the user profile every prompt is grounded
// on. Recommendations and plans are personalized against it.
type ProfileSummary struct {
	Age               int
	Gender            string
	HeightCm          float64
	WeightKg          float64
	DietaryPreference string
	GoalType          string
	GoalDetail        string
	GoalCustomDetail  string
	Profession        string
	CustomProfession  string
}

func (p ProfileSummary) String() string {
	goal := fmt.Sprintf("%s - %s", p.GoalType, p.GoalDetail)
	if p.GoalCustomDetail != "" {
		goal += fmt.Sprintf(" (%s)", p.GoalCustomDetail)
	}
	profession := p.Profession
	if p.CustomProfession != "" {
		profession += fmt.Sprintf(" (%s)", p.CustomProfession)
	}
	return fmt.Sprintf(
		"- Age: %d\n- Gender: %s\n- Height: %.0f cm\n- Weight: %.0f kg\n- Dietary Preference: %s\n- Primary Goal: %s\n- Profession/Activity Level: %s",
		p.Age, p.Gender, p.HeightCm, p.WeightKg, p.DietaryPreference, goal, profession,
	)
}

type (
	// Gateway is the capability boundary to the generative model. Everything
	// behind it is a request/response pair with a fixed schema contract, so
	// the orchestration core stays decoupled from the provider.
	Gateway interface {
		AnalyzeFoodImage(ctx context.Context, base64Data, mimeType string, profile ProfileSummary) (domain.NutritionInfo, error)
		AnalyzeScannedText(ctx context.Context, payload string, profile ProfileSummary) (domain.NutritionInfo, error)
		GenerateMealPlan(ctx context.Context, profile ProfileSummary) (domain.MealPlan, error)
		GenerateShoppingList(ctx context.Context, plan domain.MealPlan) (domain.ShoppingList, error)
		GenerateWorkoutPlan(ctx context.Context, profile ProfileSummary) (domain.WorkoutPlan, error)
		TranslateTexts(ctx context.Context, texts []string, targetLanguage string) ([]string, error)
		StreamChat(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string, onChunk func(text string) error) error
	}

	client struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

func NewClient() Gateway {
	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &client{
		apiKey:     utils.GetConfig("GEMINI_API_KEY"),
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(baseURL, apiKey, model string) Gateway {
	return &client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) AnalyzeFoodImage(ctx context.Context, base64Data, mimeType string, profile ProfileSummary) (domain.NutritionInfo, error) {
	prompt := fmt.Sprintf(`Analyze the food item in this image. Based on the following user profile, provide a nutritional analysis and a personalized recommendation.

User Profile:
%s

Your task:
1. Identify the primary food item in the image.
2. Estimate its nutritional information (calories, protein, carbs, fats) for a typical serving.
3. Based on the user's profile (especially their dietary preference and primary goal), provide a recommendation: "Should Eat", "Moderate", or "Avoid".
4. Suggest a healthy serving size.
5. Provide a short, one-sentence reason for your recommendation.

Return the response ONLY in the specified JSON format.`, profile)

	parts := []map[string]interface{}{
		{"text": prompt},
		{"inline_data": map[string]interface{}{
			"mime_type": mimeType,
			"data":      base64Data,
		}},
	}

	var info domain.NutritionInfo
	if err := c.generate(ctx, parts, nutritionResponseSchema, &info); err != nil {
		return domain.NutritionInfo{}, err
	}
	if !info.Valid() {
		return domain.NutritionInfo{}, domain.ErrAnalysisFailed
	}
	return info, nil
}

func (c *client) AnalyzeScannedText(ctx context.Context, payload string, profile ProfileSummary) (domain.NutritionInfo, error) {
	prompt := fmt.Sprintf(`A user has scanned a product with the following information: %q. Assume this is from a barcode or QR code.

Based on this information and the user's profile below, provide a nutritional analysis and personalized recommendation. If the product isn't a food item, state that.

User Profile:
%s

Your task:
1. Identify the food product from the scanned information.
2. Find or estimate its nutritional information (calories, protein, carbs, fats).
3. Based on the user's profile, provide a recommendation: "Should Eat", "Moderate", "Avoid".
4. Suggest a healthy serving size from the package information if available.
5. Provide a short, one-sentence reason for your recommendation.

Return the response ONLY in the specified JSON format.`, payload, profile)

	var info domain.NutritionInfo
	if err := c.generate(ctx, []map[string]interface{}{{"text": prompt}}, nutritionResponseSchema, &info); err != nil {
		return domain.NutritionInfo{}, err
	}
	if !info.Valid() {
		return domain.NutritionInfo{}, domain.ErrAnalysisFailed
	}
	return info, nil
}

func (c *client) GenerateMealPlan(ctx context.Context, profile ProfileSummary) (domain.MealPlan, error) {
	prompt := fmt.Sprintf(`Create a healthy and balanced 7-day meal plan (Monday to Sunday) for the following user. The meals should be simple to prepare and delicious.

User Profile:
%s

Your task:
- Generate a plan with breakfast, lunch, and dinner for each of the 7 days.
- For each meal, provide a name and a short (one-sentence) description.
- Ensure the plan aligns with the user's dietary preferences and primary goal.
- Return the response ONLY in the specified JSON format.`, profile)

	var plan domain.MealPlan
	if err := c.generate(ctx, []map[string]interface{}{{"text": prompt}}, mealPlanResponseSchema, &plan); err != nil {
		return domain.MealPlan{}, err
	}
	if len(plan.WeeklyPlan) != 7 {
		return domain.MealPlan{}, domain.ErrMalformedPlan
	}
	return plan, nil
}

func (c *client) GenerateShoppingList(ctx context.Context, plan domain.MealPlan) (domain.ShoppingList, error) {
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return domain.ShoppingList{}, err
	}

	prompt := fmt.Sprintf(`Based on the following weekly meal plan, create a consolidated shopping list.
Organize the items into logical categories (e.g., Vegetables, Fruits, Meat, Dairy, Pantry Staples).

Meal Plan:
%s

Your task:
- Read through all meals for the week.
- Create a list of all necessary ingredients.
- Group the ingredients into logical shopping categories.
- Please make the list budget-friendly and prioritize seasonal options where appropriate.
- Return the response ONLY in the specified JSON format.`, planJSON)

	var list domain.ShoppingList
	if err := c.generate(ctx, []map[string]interface{}{{"text": prompt}}, shoppingListResponseSchema, &list); err != nil {
		return domain.ShoppingList{}, err
	}
	if len(list.Categories) == 0 {
		return domain.ShoppingList{}, domain.ErrMalformedPlan
	}
	return list, nil
}

func (c *client) GenerateWorkoutPlan(ctx context.Context, profile ProfileSummary) (domain.WorkoutPlan, error) {
	prompt := fmt.Sprintf(`Create a balanced and effective 7-day workout plan (Monday to Sunday) for the user below. The plan should be suitable for their activity level and aligned with their primary goal. Assume minimal to no gym equipment unless their goal implies professional training.

User Profile:
%s

Your task:
- Generate a 7-day plan. Include at least one rest day.
- For each day, provide a clear 'focus' (e.g., 'Full Body Strength', 'Cardio & Core', 'Active Recovery', 'Rest Day').
- For workout days, list 3-5 exercises.
- For each exercise, provide a name, the number of sets, the number of reps (or duration), and a very short, one-sentence description or tip.
- If it is a Rest Day, the 'exercises' array should be empty.
- Return the response ONLY in the specified JSON format.`, profile)

	var plan domain.WorkoutPlan
	if err := c.generate(ctx, []map[string]interface{}{{"text": prompt}}, workoutPlanResponseSchema, &plan); err != nil {
		return domain.WorkoutPlan{}, err
	}
	if len(plan.WeeklyWorkoutPlan) != 7 {
		return domain.WorkoutPlan{}, domain.ErrMalformedPlan
	}
	return plan, nil
}

func (c *client) TranslateTexts(ctx context.Context, texts []string, targetLanguage string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	textsJSON, err := json.Marshal(texts)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Translate each string in the following JSON array to %s. Keep food names, measurements and exercise names natural in the target language. Preserve the order and the number of entries exactly.

%s

Return the response ONLY in the specified JSON format.`, targetLanguage, textsJSON)

	var out struct {
		Translations []string `json:"translations"`
	}
	if err := c.generate(ctx, []map[string]interface{}{{"text": prompt}}, translationResponseSchema, &out); err != nil {
		return nil, err
	}

	// Pad so callers can always index by position; missing entries fall back
	// to the source string at the call site.
	for len(out.Translations) < len(texts) {
		out.Translations = append(out.Translations, "")
	}
	return out.Translations[:len(texts)], nil
}

func (c *client) generate(ctx context.Context, parts []map[string]interface{}, schema map[string]interface{}, target interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not configured")
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      0.4,
			"topP":             0.8,
			"topK":             40,
			"responseMimeType": "application/json",
			"responseSchema":   schema,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("gemini returned no candidates")
	}

	responseText := extractJSON(geminiResp.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(responseText), target); err != nil {
		return fmt.Errorf("failed to parse gemini response: %w", err)
	}
	return nil
}

var jsonPattern = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON strips markdown fences and surrounding prose the model
// sometimes wraps around the JSON payload despite the response schema.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	if match := jsonPattern.FindString(text); match != "" {
		text = match
	}
	return strings.TrimSpace(text)
}

func (c *client) StreamChat(ctx context.Context, systemInstruction string, history []domain.ChatMessage, message string, onChunk func(text string) error) error {
	if c.apiKey == "" {
		return domain.ErrChatUnavailable
	}

	contents := make([]map[string]interface{}, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, map[string]interface{}{
			"role":  msg.Role,
			"parts": []map[string]interface{}{{"text": msg.Content}},
		})
	}
	contents = append(contents, map[string]interface{}{
		"role":  "user",
		"parts": []map[string]interface{}{{"text": message}},
	})

	requestBody := map[string]interface{}{
		"contents": contents,
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]interface{}{{"text": systemInstruction}},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var chunk struct {
			Candidates []struct {
				Content struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"content"`
			} `json:"candidates"`
		}
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			continue
		}
		if len(chunk.Candidates) == 0 || len(chunk.Candidates[0].Content.Parts) == 0 {
			continue
		}
		if err := onChunk(chunk.Candidates[0].Content.Parts[0].Text); err != nil {
			return err
		}
	}
	return scanner.Err()
}
