// main.go - Entry point for the Firefly console runtime

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func boilerPlate() {
	fmt.Println("firefly-runtime: a sandboxed WebAssembly console host for handheld retro games.")
}

// romPath resolves the cartridge file for (author, app) under root, as
// "<root>/<author>/<app>/cart.wasm".
func romPath(root, author, app string) string {
	return filepath.Join(root, author, app, "cart.wasm")
}

func main() {
	boilerPlate()

	author := flag.String("author", "", "guest author id (required)")
	app := flag.String("app", "", "guest app id (required)")
	romsRoot := flag.String("roms", "roms", "roms capability root directory")
	dataRoot := flag.String("data", "data", "data capability root directory")
	netAddr := flag.String("addr", ":0", "local UDP address for netplay (\":0\" picks an ephemeral port)")
	sudo := flag.Bool("sudo", false, "enable the sudo host module (development builds only)")
	scale := flag.Int("scale", 3, "display pixel scale")
	flag.Parse()

	if *author == "" || *app == "" {
		fmt.Println("Usage: firefly-runtime -author=<author> -app=<app> [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	config := DefaultConfig()
	config.RomsRoot = *romsRoot
	config.DataRoot = *dataRoot
	config.Sudo = *sudo

	device, err := NewNativeDevice(config, *netAddr, *scale)
	if err != nil {
		fmt.Printf("Failed to initialize device: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	curAuthor, curApp := *author, *app
	for {
		cartPath := romPath(config.RomsRoot, curAuthor, curApp)
		romBytes, err := os.ReadFile(cartPath)
		if err != nil {
			fmt.Printf("Error loading cartridge %s: %v\n", cartPath, err)
			os.Exit(1)
		}

		rt := NewRuntime(device, config)
		if err := rt.Boot(ctx, curAuthor, curApp, romBytes); err != nil {
			fmt.Printf("Failed to boot %s/%s: %v\n", curAuthor, curApp, err)
			os.Exit(1)
		}

		fmt.Printf("Running %s/%s\n", curAuthor, curApp)
		transition, err := rt.Run(ctx)
		closeErr := rt.Close(ctx)
		if err != nil {
			fmt.Printf("Runtime error: %v\n", err)
			os.Exit(1)
		}
		if closeErr != nil {
			fmt.Printf("Error closing runtime: %v\n", closeErr)
		}

		if transition == nil || ctx.Err() != nil {
			return
		}
		curAuthor, curApp = transition.Author, transition.App
	}
}
