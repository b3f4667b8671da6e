// Command seed_recipes loads a starter catalog so a fresh deployment can
// generate plans before any recipes are added by hand. Seeding is
// idempotent: recipes already present by name are skipped.
package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/panpal-app/backend/config"
	"github.com/panpal-app/backend/internal/database"
	"github.com/panpal-app/backend/internal/logging"
	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/service"
	"github.com/panpal-app/backend/internal/types"
)

var starterCatalog = []models.Recipe{
	{
		Name: "Congee with Century Egg",
		Ingredients: []types.Ingredient{
			{Name: "Rice", Amount: "1", Unit: "cup"},
			{Name: "Century egg", Amount: "2", Unit: "pcs"},
			{Name: "Scallion", Amount: "1", Unit: "stalk"},
		},
		Steps:       []string{"Simmer rice in water until broken down", "Stir in diced century egg", "Top with scallion"},
		Calories:    310, Protein: 11, Fat: 6, Carbs: 54,
		CookingTime: 30, Difficulty: "easy",
		Tags:    []string{"breakfast", "morning"},
		Cuisine: "Chinese", Budget: "economic",
	},
	{
		Name: "Veggie Omelette Toast",
		Ingredients: []types.Ingredient{
			{Name: "Eggs", Amount: "2", Unit: "pcs"},
			{Name: "Whole wheat bread", Amount: "2", Unit: "slices"},
			{Name: "Tomato", Amount: "1", Unit: "pcs"},
		},
		Steps:       []string{"Whisk and fry the eggs with diced tomato", "Toast the bread", "Serve together"},
		Calories:    380, Protein: 20, Fat: 16, Carbs: 38,
		CookingTime: 12, Difficulty: "easy",
		Tags:    []string{"breakfast", "eggs", "toast"},
		Cuisine: "Western", Budget: "standard",
	},
	{
		Name: "Berry Protein Smoothie",
		Ingredients: []types.Ingredient{
			{Name: "Frozen berries", Amount: "1", Unit: "cup"},
			{Name: "Milk", Amount: "1", Unit: "cup"},
			{Name: "Protein powder", Amount: "1", Unit: "scoop"},
		},
		Steps:       []string{"Blend everything until smooth"},
		Calories:    290, Protein: 28, Fat: 5, Carbs: 34,
		CookingTime: 5, Difficulty: "easy",
		Tags:    []string{"breakfast", "smoothie"},
		Cuisine: "Western", Budget: "premium",
	},
	{
		Name: "Teriyaki Chicken Rice Bowl",
		Ingredients: []types.Ingredient{
			{Name: "Chicken thigh", Amount: "200", Unit: "g"},
			{Name: "Rice", Amount: "1", Unit: "cup"},
			{Name: "Broccoli", Amount: "1", Unit: "cup"},
		},
		Steps:       []string{"Sear chicken and glaze with teriyaki sauce", "Steam broccoli", "Serve over rice"},
		Calories:    680, Protein: 42, Fat: 18, Carbs: 82,
		CookingTime: 25, Difficulty: "medium",
		Tags:    []string{"lunch", "main", "protein", "rice"},
		Cuisine: "Japanese", Budget: "standard",
	},
	{
		Name: "Mapo Tofu with Rice",
		Ingredients: []types.Ingredient{
			{Name: "Tofu", Amount: "300", Unit: "g"},
			{Name: "Ground pork", Amount: "100", Unit: "g"},
			{Name: "Rice", Amount: "1", Unit: "cup"},
		},
		Steps:       []string{"Fry pork with chili bean paste", "Simmer tofu in the sauce", "Serve over rice"},
		Calories:    620, Protein: 34, Fat: 24, Carbs: 68,
		CookingTime: 20, Difficulty: "medium",
		Tags:    []string{"lunch", "main", "rice"},
		Cuisine: "Chinese", Budget: "economic",
	},
	{
		Name: "Grilled Salmon Quinoa Salad",
		Ingredients: []types.Ingredient{
			{Name: "Salmon fillet", Amount: "180", Unit: "g"},
			{Name: "Quinoa", Amount: "1/2", Unit: "cup"},
			{Name: "Mixed greens", Amount: "2", Unit: "cups"},
		},
		Steps:       []string{"Grill the salmon", "Cook quinoa", "Toss with greens and dress"},
		Calories:    540, Protein: 38, Fat: 22, Carbs: 44,
		CookingTime: 25, Difficulty: "medium",
		Tags:    []string{"lunch", "protein", "vegetables"},
		Cuisine: "Western", Budget: "premium",
	},
	{
		Name: "Stir-Fried Beef Noodles",
		Ingredients: []types.Ingredient{
			{Name: "Beef strips", Amount: "150", Unit: "g"},
			{Name: "Wheat noodles", Amount: "200", Unit: "g"},
			{Name: "Bell pepper", Amount: "1", Unit: "pcs"},
		},
		Steps:       []string{"Boil noodles", "Stir-fry beef and pepper", "Toss together with soy sauce"},
		Calories:    650, Protein: 36, Fat: 20, Carbs: 78,
		CookingTime: 20, Difficulty: "medium",
		Tags:    []string{"lunch", "noodles", "main"},
		Cuisine: "Chinese", Budget: "standard",
	},
	{
		Name: "Tomato Egg Drop Soup with Rice",
		Ingredients: []types.Ingredient{
			{Name: "Tomato", Amount: "2", Unit: "pcs"},
			{Name: "Eggs", Amount: "2", Unit: "pcs"},
			{Name: "Rice", Amount: "1", Unit: "cup"},
		},
		Steps:       []string{"Simmer tomatoes into a broth", "Stream in beaten egg", "Serve with rice"},
		Calories:    420, Protein: 16, Fat: 12, Carbs: 60,
		CookingTime: 15, Difficulty: "easy",
		Tags:    []string{"dinner", "soup", "light"},
		Cuisine: "Chinese", Budget: "economic",
	},
	{
		Name: "Miso Glazed Cod with Vegetables",
		Ingredients: []types.Ingredient{
			{Name: "Cod fillet", Amount: "180", Unit: "g"},
			{Name: "Bok choy", Amount: "2", Unit: "heads"},
			{Name: "Miso paste", Amount: "1", Unit: "tbsp"},
		},
		Steps:       []string{"Glaze cod with miso and broil", "Steam bok choy", "Plate together"},
		Calories:    460, Protein: 40, Fat: 14, Carbs: 40,
		CookingTime: 25, Difficulty: "medium",
		Tags:    []string{"dinner", "evening", "light"},
		Cuisine: "Japanese", Budget: "premium",
	},
	{
		Name: "Chicken Vegetable Soup",
		Ingredients: []types.Ingredient{
			{Name: "Chicken breast", Amount: "150", Unit: "g"},
			{Name: "Carrot", Amount: "1", Unit: "pcs"},
			{Name: "Onion", Amount: "1/2", Unit: "pcs"},
		},
		Steps:       []string{"Simmer chicken with vegetables", "Season and serve hot"},
		Calories:    380, Protein: 34, Fat: 10, Carbs: 36,
		CookingTime: 30, Difficulty: "easy",
		Tags:    []string{"dinner", "soup", "comfort"},
		Cuisine: "Western", Budget: "standard",
	},
	{
		Name: "Bibimbap",
		Ingredients: []types.Ingredient{
			{Name: "Rice", Amount: "1", Unit: "cup"},
			{Name: "Spinach", Amount: "1", Unit: "cup"},
			{Name: "Eggs", Amount: "1", Unit: "pcs"},
		},
		Steps:       []string{"Arrange seasoned vegetables over rice", "Top with fried egg and gochujang"},
		Calories:    560, Protein: 20, Fat: 16, Carbs: 84,
		CookingTime: 30, Difficulty: "medium",
		Tags:    []string{"dinner", "comfort"},
		Cuisine: "Korean", Budget: "standard",
	},
	{
		Name: "Lentil Curry with Rice",
		Ingredients: []types.Ingredient{
			{Name: "Red lentils", Amount: "1", Unit: "cup"},
			{Name: "Coconut milk", Amount: "1/2", Unit: "cup"},
			{Name: "Rice", Amount: "1", Unit: "cup"},
		},
		Steps:       []string{"Simmer lentils with curry spices and coconut milk", "Serve over rice"},
		Calories:    580, Protein: 24, Fat: 16, Carbs: 86,
		CookingTime: 30, Difficulty: "easy",
		Tags:    []string{"dinner", "comfort", "vegetables"},
		Cuisine: "Indian", Budget: "economic",
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	gormDB, err := db.Gorm()
	if err != nil {
		logger.Fatal("failed to open gorm session", zap.Error(err))
	}

	seeded := 0
	for _, recipe := range starterCatalog {
		var count int64
		if err := gormDB.Model(&models.Recipe{}).Where("name = ?", recipe.Name).Count(&count).Error; err != nil {
			logger.Fatal("failed to check existing recipe", zap.Error(err))
		}
		if count > 0 {
			continue
		}

		recipe.ID = uuid.New()
		recipe.Embedding = service.GenerateEmbedding(recipe.Name)
		if err := gormDB.Create(&recipe).Error; err != nil {
			logger.Fatal("failed to seed recipe", zap.String("name", recipe.Name), zap.Error(err))
		}
		seeded++
	}

	logger.Info("seeding complete", zap.Int("seeded", seeded), zap.Int("catalog", len(starterCatalog)))
}
