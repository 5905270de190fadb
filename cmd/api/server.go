package main

import (
	"log"
	"net/http"
	"os"

	mw "github.com/muhammadelshareif/BudgetBuddy/internal/api/middlewares"
	"github.com/muhammadelshareif/BudgetBuddy/internal/api/routers"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories/sqlconnect"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	utils.InitLogger()

	if err := sqlconnect.ConnectDb(); err != nil {
		utils.Logger.Fatal("DB connection failed: ", err)
	}

	if err := sqlconnect.RunMigrations(sqlconnect.DB); err != nil {
		utils.Logger.Fatal("DB migration failed: ", err)
	}

	store := repositories.NewStore(sqlconnect.DB)
	router := routers.MainRouter(store)

	jwtMiddleware := mw.MiddlewaresExcludePaths(mw.JWTMiddleware,
		"/api/auth/signup", "/api/auth/login", "/api/auth/logout")

	handler := mw.RequestID(mw.SecurityHeaders(jwtMiddleware(router)))

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = ":8080"
	}

	server := &http.Server{
		Addr:    port,
		Handler: handler,
	}

	utils.Logger.Infof("server listening on %s", port)

	cert := os.Getenv("CERT_FILE")
	key := os.Getenv("KEY_FILE")

	var err error
	if cert != "" && key != "" {
		err = server.ListenAndServeTLS(cert, key)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil {
		log.Fatalln("Error starting the server", err)
	}
}
