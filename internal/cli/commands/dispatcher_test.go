package commands

import (
	"context"
	"strings"
	"testing"

	"ItemKeeper/internal/config"
)

func TestDispatch_UnknownCommandShowsUsage(t *testing.T) {
	withTempConfig(t)
	out := captureOut(t)

	cfg := &config.Config{ServerURL: "http://localhost:1"}
	code := Dispatch(context.Background(), cfg, []string{"no-such-cmd"})
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(out.String(), "Unknown command: no-such-cmd") ||
		!strings.Contains(out.String(), "ItemKeeper CLI") {
		t.Fatalf("usage not shown: %q", out.String())
	}
}

func TestDispatch_NoArgsShowsGlobalUsage(t *testing.T) {
	withTempConfig(t)
	out := captureOut(t)

	cfg := &config.Config{ServerURL: "http://localhost:1"}
	if code := Dispatch(context.Background(), cfg, nil); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	// все команды перечислены в help
	for _, name := range []string{"login", "register", "logout", "status", "items", "item-add", "item-edit", "item-del"} {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("command %q missing from help: %q", name, out.String())
		}
	}
}

func TestDispatch_HelpForCommand(t *testing.T) {
	withTempConfig(t)
	out := captureOut(t)

	cfg := &config.Config{ServerURL: "http://localhost:1"}
	if code := Dispatch(context.Background(), cfg, []string{"help", "item-del"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage: item-del <id>") {
		t.Fatalf("command usage not shown: %q", out.String())
	}
}

func TestDispatch_UsageErrorAndRunError(t *testing.T) {
	withTempConfig(t)
	out := captureOut(t)

	cfg := &config.Config{ServerURL: "http://localhost:1"}
	// плохие аргументы → 2 + usage
	if code := Dispatch(context.Background(), cfg, []string{"item-edit"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage: item-edit <id> <title> [description]") {
		t.Fatalf("usage not shown: %q", out.String())
	}

	// ошибка выполнения (нет сессии) → 1
	out.Reset()
	if code := Dispatch(context.Background(), cfg, []string{"items"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "items error:") {
		t.Fatalf("error not reported: %q", out.String())
	}
}
