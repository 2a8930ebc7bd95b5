package mockapi

import (
	"github.com/gin-gonic/gin"

	"github.com/marshallshelly/boardwalk/pkg/api"
)

// Fixture payloads for the six analytics endpoints. Shapes mirror the real
// service so the dashboard renders identically against either.

var coffeeBrands = []api.CoffeeBrand{
	{Brand: "Drip & Dash", Popularity: 82},
	{Brand: "Bean Machine", Popularity: 67},
	{Brand: "Roast Office", Popularity: 55},
	{Brand: "Grounds Zero", Popularity: 43},
	{Brand: "Brewtiful", Popularity: 31},
}

var snackBrands = []api.SnackBrand{
	{Name: "Crunch Bros", Share: 34},
	{Name: "Seaweed & Co", Share: 27},
	{Name: "Choco Pilot", Share: 19},
	{Name: "Rice Rocket", Share: 12},
	{Name: "Nut Case", Share: 8},
}

var moodTrend = []api.WeeklyMood{
	{Week: "W1", Happy: 62, Tired: 25, Stressed: 13},
	{Week: "W2", Happy: 55, Tired: 30, Stressed: 15},
	{Week: "W3", Happy: 48, Tired: 33, Stressed: 19},
	{Week: "W4", Happy: 58, Tired: 27, Stressed: 15},
	{Week: "W5", Happy: 66, Tired: 22, Stressed: 12},
	{Week: "W6", Happy: 60, Tired: 28, Stressed: 12},
}

var workoutTrend = []api.WeeklyWorkout{
	{Week: "W1", Running: 14, Cycling: 9, Stretching: 21},
	{Week: "W2", Running: 17, Cycling: 11, Stretching: 18},
	{Week: "W3", Running: 12, Cycling: 14, Stretching: 22},
	{Week: "W4", Running: 19, Cycling: 10, Stretching: 17},
	{Week: "W5", Running: 21, Cycling: 13, Stretching: 20},
	{Week: "W6", Running: 16, Cycling: 15, Stretching: 24},
}

var coffeeConsumption = api.CoffeeConsumption{
	Teams: []api.CoffeeTeam{
		{Team: "Platform", Series: []api.CoffeePoint{
			{Cups: 1, Bugs: 9, Productivity: 42},
			{Cups: 2, Bugs: 7, Productivity: 55},
			{Cups: 3, Bugs: 5, Productivity: 63},
			{Cups: 4, Bugs: 6, Productivity: 60},
			{Cups: 5, Bugs: 8, Productivity: 48},
		}},
		{Team: "Frontend", Series: []api.CoffeePoint{
			{Cups: 1, Bugs: 11, Productivity: 38},
			{Cups: 2, Bugs: 8, Productivity: 51},
			{Cups: 3, Bugs: 6, Productivity: 58},
			{Cups: 4, Bugs: 7, Productivity: 54},
			{Cups: 5, Bugs: 10, Productivity: 44},
		}},
		{Team: "Data", Series: []api.CoffeePoint{
			{Cups: 1, Bugs: 6, Productivity: 47},
			{Cups: 2, Bugs: 5, Productivity: 59},
			{Cups: 3, Bugs: 4, Productivity: 66},
			{Cups: 4, Bugs: 5, Productivity: 61},
			{Cups: 5, Bugs: 7, Productivity: 52},
		}},
	},
}

var snackImpact = api.SnackImpact{
	Departments: []api.SnackDepartment{
		{Name: "Engineering", Metrics: []api.SnackPoint{
			{Snacks: 10, MeetingsMissed: 1, Morale: 61},
			{Snacks: 20, MeetingsMissed: 2, Morale: 68},
			{Snacks: 30, MeetingsMissed: 4, Morale: 74},
			{Snacks: 40, MeetingsMissed: 7, Morale: 71},
		}},
		{Name: "Design", Metrics: []api.SnackPoint{
			{Snacks: 10, MeetingsMissed: 0, Morale: 64},
			{Snacks: 20, MeetingsMissed: 1, Morale: 70},
			{Snacks: 30, MeetingsMissed: 3, Morale: 76},
			{Snacks: 40, MeetingsMissed: 5, Morale: 73},
		}},
		{Name: "Sales", Metrics: []api.SnackPoint{
			{Snacks: 10, MeetingsMissed: 2, Morale: 58},
			{Snacks: 20, MeetingsMissed: 4, Morale: 63},
			{Snacks: 30, MeetingsMissed: 6, Morale: 67},
			{Snacks: 40, MeetingsMissed: 9, Morale: 62},
		}},
	},
}

func registerAnalytics(r gin.IRoutes) {
	r.GET("/mock/top-coffee-brands", func(ctx *gin.Context) { ctx.JSON(200, coffeeBrands) })
	r.GET("/mock/popular-snack-brands", func(ctx *gin.Context) { ctx.JSON(200, snackBrands) })
	r.GET("/mock/weekly-mood-trend", func(ctx *gin.Context) { ctx.JSON(200, moodTrend) })
	r.GET("/mock/weekly-workout-trend", func(ctx *gin.Context) { ctx.JSON(200, workoutTrend) })
	r.GET("/mock/coffee-consumption", func(ctx *gin.Context) { ctx.JSON(200, coffeeConsumption) })
	r.GET("/mock/snack-impact", func(ctx *gin.Context) { ctx.JSON(200, snackImpact) })
}
