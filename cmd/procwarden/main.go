package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"procwarden/internal/classify"
	"procwarden/internal/config"
	"procwarden/internal/describe"
	"procwarden/internal/engine"
	"procwarden/internal/factbase"
	"procwarden/internal/metadata"
	"procwarden/internal/signature"
	"procwarden/internal/snapshot"
	"procwarden/internal/suppress"
	"procwarden/internal/terminate"
	"procwarden/internal/utils"
)

const banner = `
    ____                 _       __               __
   / __ \_________  ____| |     / /___ __________/ /__  ____
  / /_/ / ___/ __ \/ ___/ | /| / / __ '/ ___/ __  / _ \/ __ \
 / ____/ /  / /_/ / /__ | |/ |/ / /_/ / /  / /_/ /  __/ / / /
/_/   /_/   \____/\___/ |__/|__/\__,_/_/   \__,_/\___/_/ /_/

  :: ProcWarden v1.0.0 :: Process risk triage & respawn control
`

var stdin = bufio.NewScanner(os.Stdin)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config file")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	help := flag.Bool("help", false, "Show usage")
	flag.Parse()

	if *help {
		fmt.Print(banner, "\n")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Printf("[-] Config error: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Printf("[-] %v\n", err)
		os.Exit(1)
	}

	log, err := buildLogger(cfg)
	if err != nil {
		fmt.Printf("[-] Logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	eng, store, err := buildEngine(cfg, log)
	if err != nil {
		fmt.Printf("[-] Startup failed: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	clearScreen()
	fmt.Print(banner, "\n")
	checkAdminPrivileges()

	fmt.Println("[*] Taking initial process snapshot...")
	if _, err := eng.ScanOnce(); err != nil {
		fmt.Printf("[-] Initial scan failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eng.Run(ctx)

	mainLoop(eng, cfg)
}

func mainLoop(eng *engine.Engine, cfg config.Config) {
	for {
		clearScreen()
		fmt.Print(banner, "\n")
		fmt.Println("\nSelect Operation:")
		fmt.Println("1. Process Overview (classified table)")
		fmt.Println("2. Inspect Process (description & tier)")
		fmt.Println("3. Terminate Process Tree")
		fmt.Println("4. Suppress Respawn Mechanism")
		fmt.Println("5. Suppression Log & Revert")
		fmt.Println("6. Exit")
		fmt.Print("\nSelect [1-6]: ")

		switch readInput() {
		case "1":
			showOverview(eng)
		case "2":
			inspectProcess(eng)
		case "3":
			terminateTree(eng)
		case "4":
			suppressMenu(eng, cfg)
		case "5":
			suppressionLogMenu(eng)
		case "6":
			fmt.Println("Exiting ProcWarden...")
			return
		default:
			fmt.Println("Invalid selection.")
			time.Sleep(1 * time.Second)
		}
	}
}

func buildEngine(cfg config.Config, log *zap.Logger) (*engine.Engine, *suppress.JSONLStore, error) {
	facts := factbase.New()
	enum := snapshot.NewLiveEnumerator(signature.NewVerifier(), snapshot.SCMServiceMapper{})

	store, err := suppress.OpenJSONLStore(cfg.LogPath())
	if err != nil {
		return nil, nil, err
	}

	mgr, err := suppress.NewManager(suppress.DefaultMechanisms(cfg.IFEOStub), store, cfg.OpTimeout, log)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	eng := engine.New(
		enum,
		describe.NewResolver(facts, metadata.NewReader()),
		classify.New(facts),
		terminate.New(enum, terminate.LiveKiller{}, log),
		mgr,
		cfg.ScanInterval,
		log,
	)
	return eng, store, nil
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{filepath.Join(cfg.DataDir, "procwarden.log")}
	zcfg.ErrorOutputPaths = zcfg.OutputPaths
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}

func checkAdminPrivileges() {
	if utils.IsAdmin() {
		color.Green("[+] Running with ELEVATED privileges. All suppression backends available.")
	} else {
		color.Yellow("[!] RUNNING AS STANDARD USER.")
		color.Yellow("[!] Service, HKLM run-key and IFEO suppression will be UNAVAILABLE.")
		fmt.Println("[*] Press Enter to continue restricted (or Ctrl+C to exit)...")
		stdin.Scan()
	}
}

func readInput() string {
	stdin.Scan()
	return strings.TrimSpace(stdin.Text())
}

func waitForKey() {
	fmt.Println("\nPress Enter to continue...")
	stdin.Scan()
}

func clearScreen() {
	fmt.Println("\033[H\033[2J")
}
