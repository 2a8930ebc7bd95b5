package api

import (
	"context"
	"encoding/json"
)

// Mock analytics payloads, one type per endpoint.

// CoffeeBrand is one entry of /mock/top-coffee-brands.
type CoffeeBrand struct {
	Brand      string  `json:"brand"`
	Popularity float64 `json:"popularity"`
}

// SnackBrand is one entry of /mock/popular-snack-brands.
type SnackBrand struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
}

// WeeklyMood is one entry of /mock/weekly-mood-trend.
type WeeklyMood struct {
	Week     string  `json:"week"`
	Happy    float64 `json:"happy"`
	Tired    float64 `json:"tired"`
	Stressed float64 `json:"stressed"`
}

// WeeklyWorkout is one entry of /mock/weekly-workout-trend.
type WeeklyWorkout struct {
	Week       string  `json:"week"`
	Running    float64 `json:"running"`
	Cycling    float64 `json:"cycling"`
	Stretching float64 `json:"stretching"`
}

// CoffeePoint relates cups consumed to outcomes for one team.
type CoffeePoint struct {
	Cups         float64 `json:"cups"`
	Bugs         float64 `json:"bugs"`
	Productivity float64 `json:"productivity"`
}

// CoffeeTeam is one team's series in /mock/coffee-consumption.
type CoffeeTeam struct {
	Team   string        `json:"team"`
	Series []CoffeePoint `json:"series"`
}

// CoffeeConsumption is the /mock/coffee-consumption payload.
type CoffeeConsumption struct {
	Teams []CoffeeTeam `json:"teams"`
}

// SnackPoint relates snack intake to outcomes for one department.
type SnackPoint struct {
	Snacks         float64 `json:"snacks"`
	MeetingsMissed float64 `json:"meetingsMissed"`
	Morale         float64 `json:"morale"`
}

// SnackDepartment is one department's metrics in /mock/snack-impact.
type SnackDepartment struct {
	Name    string       `json:"name"`
	Metrics []SnackPoint `json:"metrics"`
}

// SnackImpact is the /mock/snack-impact payload.
type SnackImpact struct {
	Departments []SnackDepartment `json:"departments"`
}

// AnalyticsClient fetches the mock analytics collections feeding the
// dashboard. All endpoints are unauthenticated.
type AnalyticsClient struct {
	c *Client
}

// NewAnalyticsClient creates an analytics client over the gateway.
func NewAnalyticsClient(c *Client) *AnalyticsClient {
	return &AnalyticsClient{c: c}
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	raw, err := c.Get(ctx, path, nil, false)
	if err != nil {
		return out, err
	}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// TopCoffeeBrands fetches /mock/top-coffee-brands.
func (a *AnalyticsClient) TopCoffeeBrands(ctx context.Context) ([]CoffeeBrand, error) {
	return getJSON[[]CoffeeBrand](ctx, a.c, "/mock/top-coffee-brands")
}

// PopularSnackBrands fetches /mock/popular-snack-brands.
func (a *AnalyticsClient) PopularSnackBrands(ctx context.Context) ([]SnackBrand, error) {
	return getJSON[[]SnackBrand](ctx, a.c, "/mock/popular-snack-brands")
}

// WeeklyMoodTrend fetches /mock/weekly-mood-trend.
func (a *AnalyticsClient) WeeklyMoodTrend(ctx context.Context) ([]WeeklyMood, error) {
	return getJSON[[]WeeklyMood](ctx, a.c, "/mock/weekly-mood-trend")
}

// WeeklyWorkoutTrend fetches /mock/weekly-workout-trend.
func (a *AnalyticsClient) WeeklyWorkoutTrend(ctx context.Context) ([]WeeklyWorkout, error) {
	return getJSON[[]WeeklyWorkout](ctx, a.c, "/mock/weekly-workout-trend")
}

// CoffeeConsumption fetches /mock/coffee-consumption.
func (a *AnalyticsClient) CoffeeConsumption(ctx context.Context) (CoffeeConsumption, error) {
	return getJSON[CoffeeConsumption](ctx, a.c, "/mock/coffee-consumption")
}

// SnackImpact fetches /mock/snack-impact.
func (a *AnalyticsClient) SnackImpact(ctx context.Context) (SnackImpact, error) {
	return getJSON[SnackImpact](ctx, a.c, "/mock/snack-impact")
}
