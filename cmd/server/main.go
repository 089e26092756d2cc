package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"bacchat/internal/auth"
	"bacchat/internal/config"
	"bacchat/internal/database"
	"bacchat/internal/email"
	"bacchat/internal/logging"
	"bacchat/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logOutput := io.Writer(os.Stdout)
	if cfg.LogFile != "" {
		fileWriter, err := logging.NewRotatingFileWriter(cfg.LogFile, 10<<20, 3)
		if err != nil {
			log.Fatalf("log setup error: %v", err)
		}
		defer fileWriter.Close()
		logOutput = io.MultiWriter(os.Stdout, fileWriter)
	}
	log.SetOutput(logOutput)
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lshortfile)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Close()

	users := auth.NewUserRepository(db)
	tokens := auth.NewTokenRepository(db)
	hasher := auth.NewBcryptHasher()
	signer := auth.NewTokenSigner([]byte(cfg.JWTSecret))
	mailer := email.NewSender(cfg.Email)

	credentials := auth.NewCredentialService(users, tokens, hasher, signer, mailer, cfg.BaseURL)

	api := server.NewServer(cfg, credentials)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.Router(),
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	log.Printf("Listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
