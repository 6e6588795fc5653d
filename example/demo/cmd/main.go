// Demo: two bookshops with overlapping stock, concurrent customers racing
// for the same physical copies, and a conservation audit at the end.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lambdacurry/bookmarket/bookdata"
	"github.com/lambdacurry/bookmarket/bookshop"
	"github.com/lambdacurry/bookmarket/bookshop/oteladapters"
)

//go:embed shop1_books.json
var shop1Books []byte

//go:embed shop2_books.json
var shop2Books []byte

const (
	defaultCustomers = 8
	defaultBudget    = 400
)

type Config struct {
	Customers int
	Budget    int64
	Verbose   bool
}

func main() {
	cfg := parseFlags()

	logger := newLogger(cfg.Verbose)

	firstShop, secondShop, err := seedShops(logger)
	if err != nil {
		log.Fatalf("Failed to seed shops: %v", err)
	}

	initialCopies := firstShop.CatalogueSize() + secondShop.CatalogueSize()

	reportStock(firstShop)
	reportStock(secondShop)
	reportOverlap(firstShop, secondShop)

	customers := runSimulation(cfg, logger, firstShop, secondShop)

	audit(initialCopies, firstShop, secondShop, customers)
}

func parseFlags() Config {
	var (
		customers = flag.Int("customers", defaultCustomers, "Number of concurrent customers")
		budget    = flag.Int64("budget", defaultBudget, "Budget per customer")
		verbose   = flag.Bool("verbose", false, "Log every purchase attempt")
	)

	flag.Parse()

	if *customers < 1 {
		log.Fatalf("Invalid customer count %d", *customers)
	}

	return Config{Customers: *customers, Budget: *budget, Verbose: *verbose}
}

func newLogger(verbose bool) bookshop.ContextualLogger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})

	return oteladapters.NewSlogBridgeLoggerWithHandler(handler)
}

func seedShops(logger bookshop.ContextualLogger) (*bookshop.Shop, *bookshop.Shop, error) {
	firstShop, err := bookshop.NewShop("Riverside Books", bookshop.WithShopContextualLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	secondShop, err := bookshop.NewShop("Corner Press", bookshop.WithShopContextualLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	if _, err := bookdata.StockShop(firstShop, shop1Books); err != nil {
		fmt.Printf("%s: some seed books were rejected: %v\n", firstShop.Name(), err)
	}

	if _, err := bookdata.StockShop(secondShop, shop2Books); err != nil {
		fmt.Printf("%s: some seed books were rejected: %v\n", secondShop.Name(), err)
	}

	return firstShop, secondShop, nil
}

func reportStock(shop *bookshop.Shop) {
	fmt.Printf("%s stocks %d copies, %d distinct titles\n",
		shop.Name(), shop.CatalogueSize(), len(shop.DistinctCatalogue()))

	for _, book := range shop.DistinctCatalogue() {
		fmt.Printf("  %s, %s\n", book, book.Price.StringFixed(2))
	}
}

func reportOverlap(firstShop, secondShop *bookshop.Shop) {
	common := bookshop.FindSameBooks(firstShop, secondShop)

	fmt.Printf("Both shops stock %d books:\n", len(common))
	for _, book := range common {
		fmt.Printf("  %s\n", book)
	}
}

func runSimulation(cfg Config, logger bookshop.ContextualLogger, shops ...*bookshop.Shop) []*bookshop.Customer {
	customers := make([]*bookshop.Customer, cfg.Customers)

	for i := range customers {
		customer, err := bookshop.NewCustomer(
			fmt.Sprintf("customer-%02d", i+1),
			bookshop.WithCustomerContextualLogger(logger),
		)
		if err != nil {
			log.Fatalf("Failed to create customer: %v", err)
		}

		if err := customer.AddToBudget(decimal.NewFromInt(cfg.Budget)); err != nil {
			log.Fatalf("Failed to fund customer: %v", err)
		}

		customers[i] = customer
	}

	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(len(customers))

	// Every customer walks both shops in random order and tries to buy
	// whatever is on the shelves. Losers of a race get a not-available
	// result; nobody ends up with a half-applied purchase.
	for i, customer := range customers {
		go func(i int, customer *bookshop.Customer) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(int64(i)))

			for _, shop := range shuffledShops(rng, shops) {
				for _, book := range shop.DistinctCatalogue() {
					_ = customer.Buy(ctx, shop, book)
				}
			}
		}(i, customer)
	}

	wg.Wait()

	return customers
}

func shuffledShops(rng *rand.Rand, shops []*bookshop.Shop) []*bookshop.Shop {
	shuffled := make([]*bookshop.Shop, len(shops))
	copy(shuffled, shops)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

func audit(initialCopies int, firstShop, secondShop *bookshop.Shop, customers []*bookshop.Customer) {
	fmt.Println()
	fmt.Println("--- audit ---")

	soldCopies := 0
	totalSpent := decimal.Zero

	for _, customer := range customers {
		library := customer.Library()
		soldCopies += len(library)

		spent := decimal.Zero
		for _, book := range library {
			spent = spent.Add(book.Price)
		}
		totalSpent = totalSpent.Add(spent)

		fmt.Printf("%s owns %d books, spent %s, budget left %s\n",
			customer.Name(), len(library), spent.StringFixed(2), customer.Budget().StringFixed(2))
	}

	remaining := firstShop.CatalogueSize() + secondShop.CatalogueSize()
	totalIncome := firstShop.Income().Add(secondShop.Income())

	fmt.Printf("%s earned %s from %d sales\n", firstShop.Name(), firstShop.Income().StringFixed(2), len(firstShop.Sales()))
	fmt.Printf("%s earned %s from %d sales\n", secondShop.Name(), secondShop.Income().StringFixed(2), len(secondShop.Sales()))

	fmt.Printf("copies: %d initial = %d on shelves + %d in libraries\n", initialCopies, remaining, soldCopies)
	fmt.Printf("money: shops earned %s, customers spent %s\n", totalIncome.StringFixed(2), totalSpent.StringFixed(2))

	if initialCopies != remaining+soldCopies || !totalIncome.Equal(totalSpent) {
		log.Fatal("audit failed: books or money were lost in a purchase")
	}

	fmt.Println("audit passed: every copy and every cent accounted for")
}
