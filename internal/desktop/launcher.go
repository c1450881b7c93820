package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"
)

const serverBinaryName = "aerolab"

// Launcher runs the calculator server as a child process and points a window
// at it: probe a free port, spawn, health-poll, open, wait, terminate.
type Launcher struct {
	cfg    *Config
	logger *zap.Logger
}

func NewLauncher(cfg *Config, logger *zap.Logger) *Launcher {
	return &Launcher{cfg: cfg, logger: logger}
}

// ServerBinary locates the hosting binary: a config override first, then next
// to the launcher executable, then in its resources directory.
func (l *Launcher) ServerBinary() (string, error) {
	if l.cfg.ServerBinary != "" {
		if _, err := os.Stat(l.cfg.ServerBinary); err != nil {
			return "", fmt.Errorf("configured server binary: %w", err)
		}
		return l.cfg.ServerBinary, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	here := filepath.Dir(exe)

	name := serverBinaryName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	for _, candidate := range []string{
		filepath.Join(here, name),
		filepath.Join(here, "resources", name),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("server binary %q not found next to %s", name, here)
}

func (l *Launcher) Run(ctx context.Context) error {
	bin, err := l.ServerBinary()
	if err != nil {
		return err
	}

	port, err := FindFreePort(l.cfg.PortStart, l.cfg.PortEnd)
	if err != nil {
		return err
	}
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	url := "http://" + addr
	l.logger.Info("starting calculator server", zap.String("binary", bin), zap.String("addr", addr))

	cmd := exec.Command(bin, "-addr", addr)
	cmd.Env = append(os.Environ(), "AEROLAB_USAGE_STATS=false")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn server: %w", err)
	}
	// Single waiter for the child; everyone else watches this channel.
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	defer l.terminate(cmd, done)

	interval := time.Duration(l.cfg.PollIntervalMS) * time.Millisecond
	timeout := time.Duration(l.cfg.StartupTimeoutS) * time.Second
	notify := func(err error, d time.Duration) {
		l.logger.Debug("server not up yet", zap.Error(err), zap.Duration("next_poll", d))
	}
	if err := WaitUntilUp(ctx, url, interval, timeout, notify); err != nil {
		return fmt.Errorf("server did not start within %s: %w", timeout, err)
	}
	l.logger.Info("server is up", zap.String("url", url))

	if webview := l.webviewCommand(); webview != "" {
		// Native window: block until the user closes it.
		win := exec.Command(webview, url)
		win.Env = append(os.Environ(), "AEROLAB_WINDOW_TITLE="+l.cfg.WindowTitle)
		win.Stdout = os.Stdout
		win.Stderr = os.Stderr
		if err := win.Run(); err == nil {
			return nil
		}
		l.logger.Debug("webview command failed, falling back to browser")
	}

	if err := l.openBrowser(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	// With only a browser tab to point at us there is no window handle to
	// wait on; stay alive until the server exits or the launcher is stopped.
	select {
	case <-ctx.Done():
		return nil
	case err := <-done:
		return err
	}
}

func (l *Launcher) webviewCommand() string {
	if l.cfg.WebviewCommand == "" {
		return ""
	}
	path, err := exec.LookPath(l.cfg.WebviewCommand)
	if err != nil {
		return ""
	}
	return path
}

func (l *Launcher) openBrowser(url string) error {
	if l.cfg.BrowserCommand != "" {
		return exec.Command(l.cfg.BrowserCommand, url).Start()
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// terminate stops the child. done must be the channel fed by the single
// cmd.Wait goroutine; terminate never calls Wait itself.
func (l *Launcher) terminate(cmd *exec.Cmd, done <-chan error) {
	if cmd.Process == nil || cmd.ProcessState != nil {
		return
	}
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		cmd.Process.Kill()
		return
	}
	// Give the server its graceful-shutdown window, then force it.
	select {
	case <-done:
	case <-time.After(6 * time.Second):
		cmd.Process.Kill()
		<-done
	}
}
