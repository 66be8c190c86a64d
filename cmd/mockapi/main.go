package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/mockapi"
)

func main() {

	addr := flag.String("addr", "127.0.0.1:8080", "address to listen on")
	secret := flag.String("secret", "dev-secret", "JWT signing secret")
	flag.Parse()

	logger := logging.NewConsoleLogger(os.Stderr)
	server := mockapi.NewServer(*secret, logger)

	seed(server)

	log.Printf("mock storefront API listening on %s", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		log.Fatalf("%v", err)
	}
}

// seed loads a small demo dataset: an admin, a regular user, and a few
// products to browse.
func seed(s *mockapi.Server) {
	if _, err := s.SeedUser("Admin", "admin@example.com", "5550000000", "admin", "admin"); err != nil {
		log.Fatalf("seeding admin: %v", err)
	}
	if _, err := s.SeedUser("Demo User", "demo@example.com", "5550000001", "demo", "user"); err != nil {
		log.Fatalf("seeding user: %v", err)
	}

	s.SeedProduct(models.Product{Name: "Lo-fi Sample Pack", Category: "audio", Price: 19.99, Stock: 100, DownloadURL: "https://cdn.example.com/lofi.zip"})
	s.SeedProduct(models.Product{Name: "Synthwave Preset Bank", Category: "audio", Price: 29.99, Stock: 100, DownloadURL: "https://cdn.example.com/synthwave.zip"})
	s.SeedProduct(models.Product{Name: "Studio Headphones", Category: "hardware", Price: 149., Stock: 12})
}
