package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/embedviz/embedviz/config"
	"github.com/embedviz/embedviz/pkg/analytics"
	"github.com/embedviz/embedviz/pkg/auth"
	"github.com/embedviz/embedviz/pkg/cache"
	"github.com/embedviz/embedviz/pkg/embeddings"
	"github.com/embedviz/embedviz/pkg/models"
	"github.com/embedviz/embedviz/pkg/pipeline"
	"github.com/embedviz/embedviz/pkg/reduce"
	"github.com/embedviz/embedviz/pkg/server"
)

// run is the entrypoint for the embedviz server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring embedviz: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting embedviz server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV, wires
// up the embeddings client, cache, reduction engine, and analytics, and
// installs the shutdown handler.
func NewAppState(cfg *config.Config) *models.AppState {
	embedder, err := embeddings.NewClient(cfg)
	if err != nil {
		log.Fatalf("Error creating embeddings client: %s", err)
	}

	store := cache.NewStore(cfg)
	engine := reduce.NewEngine()

	appState := &models.AppState{
		Config:    cfg,
		Cache:     store,
		Embedder:  embedder,
		Analytics: analytics.NewService(cfg),
	}
	appState.Visualizer = pipeline.NewPipeline(store, embedder, engine)

	setupSignalHandler(appState)

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if generateKey {
		fmt.Println(auth.GenerateJWT(cfg))
		os.Exit(0)
	}
	if dumpConfig {
		redacted := *cfg
		redacted.Auth.Secret = "<redacted>"
		redacted.Cache.Password = "<redacted>"
		redacted.Embeddings.OpenAIAPIKey = "<redacted>"
		redacted.Analytics.APIKey = "<redacted>"
		out, err := json.MarshalIndent(redacted, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// setupSignalHandler drains analytics and closes the cache connection on
// termination
func setupSignalHandler(appState *models.AppState) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		appState.Analytics.Close()
		if err := appState.Cache.Close(); err != nil {
			log.Errorf("Error closing cache connection: %v", err)
		}
		os.Exit(0)
	}()
}
