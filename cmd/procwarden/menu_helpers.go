package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"procwarden/internal/config"
	"procwarden/internal/core"
	"procwarden/internal/engine"
	"procwarden/internal/suppress"
)

var (
	tierSafe     = color.New(color.FgGreen)
	tierCaution  = color.New(color.FgYellow)
	tierCritical = color.New(color.FgRed, color.Bold)
)

func tierColor(t core.SafetyTier) *color.Color {
	switch t {
	case core.TierCritical:
		return tierCritical
	case core.TierCaution:
		return tierCaution
	}
	return tierSafe
}

func showOverview(eng *engine.Engine) {
	clearScreen()
	fmt.Println("=== PROCESS OVERVIEW ===")

	snap := eng.Current()
	if snap == nil {
		fmt.Println("[-] No snapshot available yet.")
		waitForKey()
		return
	}

	procs := make([]engine.ClassifiedProcess, len(snap.Processes))
	copy(procs, snap.Processes)
	sort.Slice(procs, func(i, j int) bool {
		if procs[i].Safety.Tier != procs[j].Safety.Tier {
			return procs[i].Safety.Tier > procs[j].Safety.Tier
		}
		return procs[i].PID < procs[j].PID
	})

	fmt.Printf("Snapshot taken: %s  (%d processes)\n\n", snap.Taken.Format("15:04:05"), len(procs))
	fmt.Printf("%-8s %-9s %-28s %s\n", "PID", "TIER", "NAME", "DESCRIPTION")
	for _, p := range procs {
		tierColor(p.Safety.Tier).Printf("%-8d %-9s %-28s %s\n",
			p.PID, p.Safety.Tier, truncateTo(p.Name, 28), truncateTo(p.Description.Text, 60))
	}
	waitForKey()
}

func inspectProcess(eng *engine.Engine) {
	clearScreen()
	fmt.Println("=== INSPECT PROCESS ===")
	pid, ok := askPID()
	if !ok {
		return
	}

	snap := eng.Current()
	proc, found := snap.Get(pid)
	if !found {
		fmt.Printf("[-] PID %d not found in the current snapshot.\n", pid)
		waitForKey()
		return
	}

	fmt.Printf("\nName:        %s\n", proc.Name)
	fmt.Printf("PID:         %d (parent %d)\n", proc.PID, proc.ParentPID)
	fmt.Printf("Path:        %s\n", proc.ExePath)
	fmt.Printf("User:        %s\n", proc.Username)
	fmt.Printf("Description: %s  [%s]\n", proc.Description.Text, proc.Description.Confidence)
	fmt.Print("Tier:        ")
	tierColor(proc.Safety.Tier).Println(strings.ToUpper(proc.Safety.Tier.String()))
	if proc.Safety.Impact != "" {
		fmt.Printf("Impact:      %s\n", proc.Safety.Impact)
	}
	if len(proc.Services) > 0 {
		fmt.Printf("Services:    %s\n", strings.Join(proc.Services, ", "))
	}

	if tree := snap.Tree(); tree != nil {
		if kids := tree.Descendants(pid); len(kids) > 0 {
			fmt.Printf("\nDescendants (%d):\n", len(kids))
			for _, cpid := range kids {
				if child, ok := snap.Get(cpid); ok {
					fmt.Printf("  %-8d %s\n", cpid, child.Name)
				}
			}
		}
	}
	waitForKey()
}

func terminateTree(eng *engine.Engine) {
	clearScreen()
	fmt.Println("=== TERMINATE PROCESS TREE ===")
	pid, ok := askPID()
	if !ok {
		return
	}

	proc, found := eng.Current().Get(pid)
	if !found {
		fmt.Printf("[-] PID %d not found.\n", pid)
		waitForKey()
		return
	}

	fmt.Printf("\nTarget: %s (PID %d)\n", proc.Name, pid)
	fmt.Print("Tier:   ")
	tierColor(proc.Safety.Tier).Println(strings.ToUpper(proc.Safety.Tier.String()))
	if proc.Safety.Impact != "" {
		fmt.Printf("Impact: %s\n", proc.Safety.Impact)
	}

	override := false
	if proc.Safety.Tier == core.TierCritical {
		tierCritical.Println("\n[!] This process is CRITICAL. Terminating it may crash the system.")
		fmt.Print("    Type 'override' to proceed anyway, anything else to abort: ")
		if readInput() != "override" {
			fmt.Println("[-] Aborted.")
			waitForKey()
			return
		}
		override = true
	}

	fmt.Print("\n[?] Kill this process and all its descendants? (y/n): ")
	if strings.ToLower(readInput()) != "y" {
		fmt.Println("[-] Aborted.")
		waitForKey()
		return
	}

	results, err := eng.RequestTermination(pid, true, override)
	for _, r := range results {
		marker := "[+]"
		if r.Outcome == core.AccessDenied || r.Outcome == core.Blocked {
			marker = "[-]"
		}
		fmt.Printf("%s %-8d %-28s %s\n", marker, r.PID, truncateTo(r.Name, 28), r.Outcome)
	}
	if err != nil {
		color.Red("\n[-] %v", err)
	} else {
		color.Green("\n[+] Tree terminated (%d processes).", len(results))
		offerRespawnWatch(eng, proc.Name, pid)
	}
	waitForKey()
}

func offerRespawnWatch(eng *engine.Engine, name string, pid int32) {
	fmt.Print("\n[?] Watch for respawn for 10s? (y/n): ")
	if strings.ToLower(readInput()) != "y" {
		return
	}
	fmt.Println("[*] Watching...")
	rec, respawned, err := eng.WaitForRespawn(context.Background(), name, pid, 10*time.Second)
	switch {
	case err != nil:
		fmt.Printf("[-] Watch failed: %v\n", err)
	case respawned:
		color.Yellow("[!] %s respawned as PID %d. A respawn mechanism is still active — consider suppressing it.", rec.Name, rec.PID)
	default:
		color.Green("[+] No respawn observed.")
	}
}

func suppressMenu(eng *engine.Engine, cfg config.Config) {
	clearScreen()
	fmt.Println("=== SUPPRESS RESPAWN MECHANISM ===")
	fmt.Println("1. Windows Service (disable start)")
	fmt.Println("2. Run Key (remove autorun value)")
	fmt.Println("3. Scheduled Task (disable)")
	fmt.Println("4. IFEO Block (prevent launch by name)")
	fmt.Println("5. Back")
	fmt.Print("\nSelect [1-5]: ")

	var kind suppress.Kind
	var prompt string
	switch readInput() {
	case "1":
		kind, prompt = suppress.KindService, "Service name"
	case "2":
		kind, prompt = suppress.KindRunKey, "Run-key value name"
	case "3":
		kind, prompt = suppress.KindTask, `Task path (e.g. \Vendor\Updater)`
	case "4":
		kind, prompt = suppress.KindIFEO, "Executable name (e.g. updater.exe)"
	default:
		return
	}

	fmt.Printf("%s: ", prompt)
	target := readInput()
	if target == "" {
		fmt.Println("[-] No target provided.")
		waitForKey()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.OpTimeout)
	defer cancel()
	entry, err := eng.RequestSuppression(ctx, target, kind)
	if err != nil {
		color.Red("[-] Suppression failed: %v", err)
	} else {
		color.Green("[+] Suppressed %s %q (entry %s).", entry.Kind, entry.Target, entry.ID)
		fmt.Println("    Prior state is recorded; revert any time from the suppression log.")
	}
	waitForKey()
}

func suppressionLogMenu(eng *engine.Engine) {
	for {
		clearScreen()
		fmt.Println("=== SUPPRESSION LOG ===")

		entries := eng.SuppressionLog()
		if len(entries) == 0 {
			fmt.Println("[*] No suppressions recorded.")
			waitForKey()
			return
		}

		fmt.Printf("%-38s %-9s %-24s %-14s %s\n", "ID", "KIND", "TARGET", "STATUS", "CREATED")
		for _, e := range entries {
			line := fmt.Sprintf("%-38s %-9s %-24s %-14s %s",
				e.ID, e.Kind, truncateTo(e.Target, 24), e.Status, e.Created.Format("2006-01-02 15:04"))
			switch e.Status {
			case suppress.StatusActive:
				tierCaution.Println(line)
			case suppress.StatusRevertFailed, suppress.StatusFailed:
				tierCritical.Println(line)
			default:
				fmt.Println(line)
			}
		}

		fmt.Println("\n1. Revert one entry")
		fmt.Println("2. Revert ALL active")
		fmt.Println("3. Back")
		fmt.Print("\nSelect [1-3]: ")

		switch readInput() {
		case "1":
			fmt.Print("Entry ID: ")
			id := readInput()
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			entry, err := eng.RequestRevert(ctx, id)
			cancel()
			if err != nil {
				color.Red("[-] Revert failed: %v", err)
			} else {
				color.Green("[+] Entry %s is now %s.", entry.ID, entry.Status)
			}
			waitForKey()
		case "2":
			fmt.Print("[?] Restore every active suppression? (y/n): ")
			if strings.ToLower(readInput()) != "y" {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			reverted, err := eng.RevertAll(ctx)
			cancel()
			fmt.Printf("[+] Reverted %d entries.\n", len(reverted))
			if err != nil {
				color.Red("[-] Some reverts failed: %v", err)
			}
			waitForKey()
		default:
			return
		}
	}
}

func askPID() (int32, bool) {
	fmt.Print("Enter PID: ")
	raw := readInput()
	pid, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || pid < 0 {
		fmt.Println("[-] Invalid PID.")
		waitForKey()
		return 0, false
	}
	return int32(pid), true
}

// truncateTo cuts on rune boundaries; descriptions routinely contain
// multibyte punctuation.
func truncateTo(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
