// Command seedcities loads the Brazilian municipality registry from the IBGE
// localities API into the Firestore cities collection. Run it once per
// environment, or again whenever IBGE publishes changes.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/janisto/promarket/internal/platform/firebase"
	applog "github.com/janisto/promarket/internal/platform/logging"
	"github.com/janisto/promarket/internal/service/ibge"
	"github.com/janisto/promarket/internal/service/location"
)

func main() {
	states := flag.String("states", "", "comma-separated state codes to seed (empty seeds all states)")
	flag.Parse()

	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()

	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	ctx := context.Background()

	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	})
	if err != nil {
		applog.LogFatal(ctx, "firebase initialization failed", err)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(context.Background(), "firebase close error", err)
		}
	}()

	store := location.NewFirestoreStore(clients.Firestore)
	client := ibge.NewClient(&http.Client{Timeout: 30 * time.Second})

	ufs := targetStates(*states)
	if len(ufs) == 0 {
		applog.LogFatal(ctx, "no valid state codes to seed", nil)
	}

	total := 0
	for _, uf := range ufs {
		municipalities, err := client.Municipalities(ctx, uf)
		if err != nil {
			applog.LogFatal(ctx, "fetching municipalities failed", err, zap.String("state", uf))
		}

		cities := make([]location.City, len(municipalities))
		for i, m := range municipalities {
			cities[i] = location.City{ID: m.ID, Name: m.Name, StateUF: m.StateUF}
		}
		if err := store.SeedCities(ctx, cities); err != nil {
			applog.LogFatal(ctx, "seeding cities failed", err, zap.String("state", uf))
		}

		total += len(cities)
		applog.LogInfo(ctx, "seeded state",
			zap.String("state", uf),
			zap.Int("cities", len(cities)),
		)
	}

	applog.LogInfo(ctx, "seeding complete",
		zap.Int("states", len(ufs)),
		zap.Int("cities", total),
	)
}

// targetStates resolves the -states flag into a list of valid state codes.
func targetStates(flagValue string) []string {
	if strings.TrimSpace(flagValue) == "" {
		all := location.States()
		ufs := make([]string, len(all))
		for i, s := range all {
			ufs[i] = s.UF
		}
		return ufs
	}

	var ufs []string
	for _, raw := range strings.Split(flagValue, ",") {
		uf := strings.ToUpper(strings.TrimSpace(raw))
		if uf == "" {
			continue
		}
		if !location.ValidUF(uf) {
			applog.LogWarn(context.Background(), "skipping unknown state code", zap.String("state", uf))
			continue
		}
		ufs = append(ufs, uf)
	}
	return ufs
}
