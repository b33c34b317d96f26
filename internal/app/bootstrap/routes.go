// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	accountsfeature "github.com/dalemusser/pantryhub/internal/app/features/accounts"
	familiesfeature "github.com/dalemusser/pantryhub/internal/app/features/families"
	healthfeature "github.com/dalemusser/pantryhub/internal/app/features/health"
	itemsfeature "github.com/dalemusser/pantryhub/internal/app/features/items"
	loginfeature "github.com/dalemusser/pantryhub/internal/app/features/login"
	productsfeature "github.com/dalemusser/pantryhub/internal/app/features/products"
	scanfeature "github.com/dalemusser/pantryhub/internal/app/features/scan"
	familystore "github.com/dalemusser/pantryhub/internal/app/store/families"
	itemstore "github.com/dalemusser/pantryhub/internal/app/store/items"
	loginstore "github.com/dalemusser/pantryhub/internal/app/store/logins"
	productstore "github.com/dalemusser/pantryhub/internal/app/store/products"
	userstore "github.com/dalemusser/pantryhub/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the stores over the connected
// database, builds one handler per feature, and mounts each feature's
// subrouter.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.PantryHubMongoDatabase

	users := userstore.New(db)
	families := familystore.New(db)
	items := itemstore.New(db)
	products := productstore.New(db)

	// Login history is optional; a nil store disables recording.
	var logins *loginstore.Store
	if appCfg.LoginHistory {
		logins = loginstore.New(db)
	}

	r := chi.NewRouter()

	r.Mount("/users", accountsfeature.Routes(accountsfeature.NewHandler(users, logger)))
	r.Mount("/login", loginfeature.Routes(loginfeature.NewHandler(users, logins, logger)))
	r.Mount("/families", familiesfeature.Routes(familiesfeature.NewHandler(families, logger)))
	r.Mount("/items", itemsfeature.Routes(itemsfeature.NewHandler(items, logger)))
	r.Mount("/scan", scanfeature.Routes(scanfeature.NewHandler(items, products, logger)))
	r.Mount("/products", productsfeature.Routes(productsfeature.NewHandler(products, logger)))
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.PantryHubMongoClient, logger)))

	return r, nil
}
