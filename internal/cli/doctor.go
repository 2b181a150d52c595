package cli

import (
	"encoding/json"
	"fmt"
	"os"

	ps "github.com/mitchellh/go-ps"

	"github.com/wfahy/lifeops/internal/storage"
)

// DoctorCmd runs health checks against the data directory and the store.
type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := checkDataDir(ctx.DataDir); err != nil {
		fmt.Printf("FAIL data directory: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok   data directory: %s\n", ctx.DataDir)
	}

	if err := checkSlots(ctx); err != nil {
		fmt.Printf("FAIL store slots: %v\n", err)
		hasError = true
	} else {
		fmt.Println("ok   store slots readable")
	}

	checkServer(ctx.DataDir)

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkDataDir(dataDir string) error {
	info, err := os.Stat(dataDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dataDir)
	}
	return nil
}

// checkSlots round-trips a probe slot and reads every entity collection. Any
// malformed slot is already absorbed by the store, so this only fails on I/O.
func checkSlots(ctx *Context) error {
	probe := storage.Key("doctor-probe", "")
	payload, _ := json.Marshal(map[string]string{"probe": "ok"})
	if err := ctx.Store.KV().Set(probe, payload); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	if _, ok, err := ctx.Store.KV().Get(probe); err != nil || !ok {
		return fmt.Errorf("read probe back: ok=%v err=%v", ok, err)
	}
	if err := ctx.Store.KV().Delete(probe); err != nil {
		return fmt.Errorf("delete probe: %w", err)
	}

	_ = ctx.Store.Tasks(ctx.Session.ProfileID)
	_ = ctx.Store.Orders()
	_ = ctx.Store.Reminders()
	_ = ctx.Store.History()
	_ = ctx.Store.Profiles()
	return nil
}

// checkServer reports whether the PID file points at a live process.
func checkServer(dataDir string) {
	pidPath := pidFilePath(dataDir)
	pid, err := readPIDFile(pidPath)
	if err != nil {
		fmt.Println("info display server not running (no PID file)")
		return
	}
	proc, err := ps.FindProcess(pid)
	if err != nil || proc == nil {
		fmt.Printf("warn stale PID file %s (process %d not found)\n", pidPath, pid)
		return
	}
	fmt.Printf("ok   display server running (PID %d, %s)\n", pid, proc.Executable())
}
