package cli

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"

	"tombs/assets"
	"tombs/internal/config"
	"tombs/internal/generate"
	"tombs/internal/logger"
	internalssh "tombs/internal/ssh"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the game over SSH",
	Long: `Start an SSH server. Every connection plays its own game; saves are
kept per user name under the save directory.

Connect with:  ssh -p 2222 localhost`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 2222, "SSH server port")
	serveCmd.Flags().String("key", "server_host_key", "PEM-encoded host key (generated if absent)")
	_ = v.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag("server.host_key", serveCmd.Flags().Lookup("key"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	tables, err := assets.LoadSpawnTables()
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(cfg.Server.HostKey)
	if err != nil {
		return err
	}

	h := &handler{cfg: cfg, tables: tables, playing: map[string]bool{}}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any user name is accepted; it only selects the save slot.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Log.WithField("port", cfg.Server.Port).Info("tombs SSH server listening")
	return srv.ListenAndServe()
}

// handler runs one game per SSH session.
type handler struct {
	cfg    config.Config
	tables *generate.SpawnTables

	mu      sync.Mutex
	playing map[string]bool // users with a session in progress
}

// claim marks user as playing. It fails if the user already has a session,
// since both would share one save file.
func (h *handler) claim(user string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.playing[user] {
		return false
	}
	h.playing[user] = true
	return true
}

func (h *handler) release(user string) {
	h.mu.Lock()
	delete(h.playing, user)
	h.mu.Unlock()
}

// savePath is the save file of an SSH user.
func (h *handler) savePath(user string) string {
	return filepath.Join(h.cfg.Save.Dir, "users", user, h.cfg.Save.File)
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	user := internalssh.SafeName(s.User())
	log := logger.Log.WithFields(logrus.Fields{"user": user, "remote": s.RemoteAddr().String()})

	if !h.claim(user) {
		fmt.Fprintf(s, "%s already has a game in progress.\r\n", user)
		_ = s.Exit(1)
		return
	}
	defer h.release(user)

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "A PTY is required. Connect with: ssh -t ...")
		_ = s.Exit(1)
		return
	}
	if err != nil {
		log.WithError(err).Error("screen setup failed")
		_ = s.Exit(1)
		return
	}
	defer screen.Fini()

	log.Info("player connected")
	err = playOn(screen, options(h.cfg, h.savePath(user)), h.tables, newRand(h.cfg.Seed))
	if err != nil {
		log.WithError(err).Error("game ended with error")
		_ = s.Exit(1)
		return
	}
	log.Info("player disconnected")
	_ = s.Exit(0)
}

// loadOrCreateHostKey reads the PEM host key at path, generating and
// persisting a new ed25519 key when the file does not exist.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		signer, err := xssh.ParsePrivateKey(data)
		if err != nil {
			return nil, fmt.Errorf("parse host key %s: %w", path, err)
		}
		logger.Log.WithField("path", path).Info("loaded host key")
		return signer, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read host key: %w", err)
	}

	logger.Log.WithField("path", path).Info("generating ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "tombs server")
	if err != nil {
		return nil, fmt.Errorf("encode host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return nil, fmt.Errorf("write host key: %w", err)
	}
	return signer, nil
}
