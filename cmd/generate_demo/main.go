// Command generate_demo creates a demo database with sample users, recipes
// and favorites.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/kviik/recipegram/internal/config"
	"github.com/kviik/recipegram/internal/database"
	"github.com/kviik/recipegram/internal/database/categories"
	"github.com/kviik/recipegram/internal/database/favorites"
	"github.com/kviik/recipegram/internal/database/recipes"
	"github.com/kviik/recipegram/internal/database/users"
	"github.com/kviik/recipegram/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	userStore := users.NewRepository(db.DB, config.DefaultBcryptCost)
	favoriteStore := favorites.NewRepository(db.DB)
	categoryStore := categories.NewRepository(db.DB, favoriteStore)
	recipeStore := recipes.NewRepository(db.DB)

	demoUser, err := userStore.Create("demo@recipegram.local", "demo-password")
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (password: demo-password)", demoUser.Email)

	chef, err := userStore.Create("chef@recipegram.local", "cooking-is-fun")
	if err != nil {
		log.Fatalf("Failed to create chef user: %v", err)
	}

	cats, err := categoryStore.GetAll(0)
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}
	catByName := make(map[string]uint)
	for _, cat := range cats {
		catByName[cat.Name] = cat.ID
	}

	for _, r := range demoRecipes() {
		categoryID, ok := catByName[r.category]
		if !ok {
			log.Printf("Unknown category %s for %s, skipping", r.category, r.title)
			continue
		}

		author := chef.ID
		if r.byDemoUser {
			author = demoUser.ID
		}

		recipeID, err := recipeStore.Create(author, r.title, categoryID, r.description, "")
		if err != nil {
			log.Printf("Failed to save recipe %s: %v", r.title, err)
			continue
		}
		if err := recipeStore.AddIngredients(recipeID, r.ingredients); err != nil {
			log.Printf("Failed to save ingredients for %s: %v", r.title, err)
			continue
		}
		log.Printf("Saved: %s (%d ingredients)", r.title, len(r.ingredients))

		if r.favorite {
			if _, err := favoriteStore.Add(demoUser.ID, recipeID); err != nil {
				log.Printf("Failed to favorite %s: %v", r.title, err)
			}
		}
	}

	log.Println("Demo database generated successfully!")
}

type demoRecipe struct {
	title       string
	category    string
	description string
	byDemoUser  bool
	favorite    bool
	ingredients []entities.IngredientInput
}

func demoRecipes() []demoRecipe {
	return []demoRecipe{
		{
			title:       "Classic Pancakes",
			category:    "Breakfast",
			description: "Fluffy pancakes from scratch. Serve with maple syrup and berries.",
			byDemoUser:  true,
			ingredients: []entities.IngredientInput{
				{Name: "Flour", Amount: "2 cups"},
				{Name: "Milk", Amount: "1 1/2 cups"},
				{Name: "Eggs", Amount: "2"},
				{Name: "Baking powder", Amount: "1 tbsp"},
				{Name: "Butter", Amount: "3 tbsp, melted"},
			},
		},
		{
			title:       "Shakshuka",
			category:    "Breakfast",
			description: "Eggs poached in a spiced tomato and pepper sauce. One pan, big flavor.",
			favorite:    true,
			ingredients: []entities.IngredientInput{
				{Name: "Eggs", Amount: "4"},
				{Name: "Canned tomatoes", Amount: "400 g"},
				{Name: "Red bell pepper", Amount: "1"},
				{Name: "Onion", Amount: "1"},
				{Name: "Cumin", Amount: "1 tsp"},
				{Name: "Paprika", Amount: "1 tsp"},
			},
		},
		{
			title:       "Caesar Salad",
			category:    "Lunch",
			description: "Crisp romaine, homemade dressing, crunchy croutons.",
			ingredients: []entities.IngredientInput{
				{Name: "Romaine lettuce", Amount: "2 heads"},
				{Name: "Parmesan", Amount: "50 g"},
				{Name: "Croutons", Amount: "1 cup"},
				{Name: "Anchovy fillets", Amount: "4"},
				{Name: "Garlic", Amount: "1 clove"},
			},
		},
		{
			title:       "Mushroom Risotto",
			category:    "Dinner",
			description: "Creamy arborio rice with porcini and a knob of butter to finish.",
			favorite:    true,
			ingredients: []entities.IngredientInput{
				{Name: "Arborio rice", Amount: "300 g"},
				{Name: "Dried porcini", Amount: "30 g"},
				{Name: "Vegetable stock", Amount: "1 l"},
				{Name: "White wine", Amount: "100 ml"},
				{Name: "Parmesan", Amount: "60 g"},
			},
		},
		{
			title:       "Chocolate Chip Cookies",
			category:    "Dessert",
			description: "Chewy in the middle, crisp at the edges. A double batch never survives.",
			byDemoUser:  true,
			ingredients: []entities.IngredientInput{
				{Name: "Flour", Amount: "2 1/4 cups"},
				{Name: "Butter", Amount: "225 g"},
				{Name: "Brown sugar", Amount: "3/4 cup"},
				{Name: "Chocolate chips", Amount: "2 cups"},
				{Name: "Eggs", Amount: "2"},
				{Name: "Vanilla extract", Amount: "1 tsp"},
			},
		},
		{
			title:       "Chickpea Curry",
			category:    "Vegan",
			description: "Weeknight coconut chickpea curry, ready in half an hour.",
			ingredients: []entities.IngredientInput{
				{Name: "Chickpeas", Amount: "2 cans"},
				{Name: "Coconut milk", Amount: "400 ml"},
				{Name: "Curry paste", Amount: "2 tbsp"},
				{Name: "Spinach", Amount: "150 g"},
				{Name: "Rice", Amount: "to serve"},
			},
		},
		{
			title:       "Hummus",
			category:    "Snacks",
			description: "Smooth hummus with tahini and lemon. Better than store-bought.",
			favorite:    true,
			ingredients: []entities.IngredientInput{
				{Name: "Chickpeas", Amount: "1 can"},
				{Name: "Tahini", Amount: "3 tbsp"},
				{Name: "Lemon juice", Amount: "2 tbsp"},
				{Name: "Garlic", Amount: "1 clove"},
				{Name: "Olive oil", Amount: "2 tbsp"},
			},
		},
	}
}
