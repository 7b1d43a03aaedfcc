package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/chaoscrypt/internal/chaos"
	"github.com/san-kum/chaoscrypt/internal/config"
	"github.com/san-kum/chaoscrypt/internal/crypt"
	"github.com/san-kum/chaoscrypt/internal/imageio"
	"github.com/san-kum/chaoscrypt/internal/pixel"
	"github.com/san-kum/chaoscrypt/internal/store"
	"github.com/san-kum/chaoscrypt/internal/tui"
	"github.com/san-kum/chaoscrypt/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	seed    float64
	rParam  float64
	outPath string
	workers int
	keyFile string
	preset  string
	live    bool
	// analysis parameters
	rMin    float64
	rMax    float64
	samples int
	keyLen  int
	delta   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaoscrypt",
		Short: "chaotic image obfuscation (logistic-map XOR cipher)",
		Long: "chaoscrypt XORs image pixels with a keystream derived from the logistic map.\n" +
			"This is reproducible obfuscation, not cryptography: the keystream repeats\n" +
			"its weaknesses (key reuse, known plaintext) and must not guard secrets.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaoscrypt", "run journal directory")

	encryptCmd := &cobra.Command{
		Use:   "encrypt [image]",
		Short: "encrypt an image",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncrypt,
	}
	addKeyFlags(encryptCmd)
	encryptCmd.Flags().StringVar(&outPath, "out", "", "output path (default ./encrypted.png)")

	decryptCmd := &cobra.Command{
		Use:   "decrypt [image]",
		Short: "decrypt an image encrypted with the same seed and r",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecrypt,
	}
	addKeyFlags(decryptCmd)
	decryptCmd.Flags().StringVar(&outPath, "out", "", "output path (default ./decrypted.png)")

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "print a keystream preview and histogram",
		RunE:  runKeys,
	}
	addKeyFlags(keysCmd)
	keysCmd.Flags().IntVar(&keyLen, "n", 4096, "number of keys to generate")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "lyapunov sweep and seed-sensitivity check",
		RunE:  runAnalyze,
	}
	addKeyFlags(analyzeCmd)
	analyzeCmd.Flags().Float64Var(&rMin, "r-min", 2.5, "sweep start")
	analyzeCmd.Flags().Float64Var(&rMax, "r-max", 4.0, "sweep end")
	analyzeCmd.Flags().IntVar(&samples, "samples", 80, "sweep samples")
	analyzeCmd.Flags().Float64Var(&delta, "delta", 1e-6, "seed perturbation for sensitivity")
	analyzeCmd.Flags().IntVar(&keyLen, "n", 512, "keys per sensitivity stream")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "ascii bifurcation diagram of the logistic map",
		RunE:  runBifurcation,
	}
	addKeyFlags(bifurcationCmd)
	bifurcationCmd.Flags().Float64Var(&rMin, "r-min", 2.5, "sweep start")
	bifurcationCmd.Flags().Float64Var(&rMax, "r-max", 4.0, "sweep end")
	bifurcationCmd.Flags().IntVar(&samples, "samples", 80, "sweep samples")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id] [path]",
		Short: "export run metadata to JSON",
		Args:  cobra.ExactArgs(2),
		RunE:  exportRun,
	}

	keyfileCmd := &cobra.Command{
		Use:   "keyfile [path]",
		Short: "write a key file with a fresh random seed",
		Args:  cobra.ExactArgs(1),
		RunE:  writeKeyfile,
	}
	keyfileCmd.Flags().Float64Var(&rParam, "r", config.DefaultR, "control parameter")
	keyfileCmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-10s r=%.2f\n", p, cfg.R)
			}
			return nil
		},
	}

	rootCmd.AddCommand(encryptCmd, decryptCmd, keysCmd, analyzeCmd, bifurcationCmd, listCmd, exportCmd, keyfileCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&seed, "seed", 0, "logistic-map seed, strictly inside (0,1)")
	cmd.Flags().Float64Var(&rParam, "r", config.DefaultR, "control parameter (chaotic for ~3.57-4.0)")
	cmd.Flags().StringVar(&keyFile, "keyfile", "", "yaml key file (flags override its values)")
	cmd.Flags().StringVar(&preset, "preset", "", "named parameter preset")
	cmd.Flags().IntVar(&workers, "workers", 0, "transform workers (0 = one per CPU)")
	cmd.Flags().BoolVar(&live, "progress", false, "show live progress view")
}

// resolveKey merges preset, key file, and flags into the final
// parameters. CLI flags win over the key file, which wins over the
// preset.
func resolveKey(cmd *cobra.Command) (crypt.Key, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return crypt.Key{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if keyFile != "" {
		loaded, err := config.Load(keyFile)
		if err != nil {
			return crypt.Key{}, fmt.Errorf("load key file: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("r") {
		cfg.R = rParam
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return crypt.Key{}, err
	}
	workers = cfg.Workers
	return crypt.Key{Seed: cfg.Seed, R: cfg.R}, nil
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	return runTransform(cmd, "encrypt", args[0])
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	return runTransform(cmd, "decrypt", args[0])
}

func runTransform(cmd *cobra.Command, op, inPath string) error {
	key, err := resolveKey(cmd)
	if err != nil {
		return err
	}

	g, err := imageio.Load(inPath)
	if err != nil {
		return err
	}

	engine := crypt.New(workers)

	out := outPath
	if out == "" {
		if op == "encrypt" {
			out = crypt.DefaultEncryptedPath
		} else {
			out = crypt.DefaultDecryptedPath
		}
	}

	fmt.Printf("%s %s (%dx%d)\n", viz.Title.Render(op), inPath, g.Width, g.Height)

	ctx := context.Background()
	var transformed = g
	if live {
		transformed, err = runWithProgress(ctx, engine, op, g, key)
	} else {
		if op == "encrypt" {
			transformed, err = engine.EncryptGrid(ctx, g, key)
		} else {
			transformed, err = engine.DecryptGrid(ctx, g, key)
		}
	}
	if err != nil {
		return err
	}

	if err := imageio.Save(out, transformed); err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(store.RunMetadata{
		Operation: op,
		Input:     inPath,
		Output:    out,
		Width:     g.Width,
		Height:    g.Height,
		R:         key.R,
		KeyPrint:  store.Fingerprint(key.Seed, key.R),
		Workers:   workers,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s wrote %s (run %s)\n", viz.OK.Render("done:"), out, viz.Subtle.Render(runID))
	return nil
}

// runWithProgress drives the transform under a bubbletea progress
// view. The transform runs in a goroutine and feeds row counts to the
// view; the view exits when the transform completes.
func runWithProgress(ctx context.Context, engine *crypt.Engine, op string, g *pixel.Grid, key crypt.Key) (*pixel.Grid, error) {
	p := tui.NewProgram(op, g.Height)
	engine.Progress = func(done, total int) {
		p.Send(tui.ProgressMsg{Done: done, Total: total})
	}

	type result struct {
		g   *pixel.Grid
		err error
	}
	ch := make(chan result, 1)
	go func() {
		var out *pixel.Grid
		var err error
		if op == "encrypt" {
			out, err = engine.EncryptGrid(ctx, g, key)
		} else {
			out, err = engine.DecryptGrid(ctx, g, key)
		}
		ch <- result{out, err}
		p.Send(tui.DoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return nil, err
	}
	res := <-ch
	return res.g, res.err
}

func runKeys(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(cmd)
	if err != nil {
		return err
	}

	keys, err := chaos.GenerateKeys(key.Seed, key.R, keyLen)
	if err != nil {
		return err
	}

	preview := keys
	if len(preview) > 16 {
		preview = preview[:16]
	}
	fmt.Printf("%s %v ...\n\n", viz.Title.Render("keystream:"), preview)
	fmt.Println(viz.KeyHistogram(keys))

	lambda, err := chaos.Lyapunov(key.Seed, key.R, 10000)
	if err != nil {
		return err
	}
	verdict := viz.OK.Render("chaotic")
	if lambda <= 0 {
		verdict = viz.Warn.Render("NOT chaotic: keys will repeat quickly")
	}
	fmt.Printf("\nlyapunov(r=%.3f) = %s  %s\n", key.R, viz.Value.Render(fmt.Sprintf("%.4f", lambda)), verdict)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(cmd)
	if err != nil {
		return err
	}

	lambdas, err := chaos.LyapunovSweep(key.Seed, rMin, rMax, samples, 2000)
	if err != nil {
		return err
	}
	fmt.Println(viz.LyapunovPlot(lambdas, rMin, rMax))

	frac, err := chaos.Sensitivity(key.Seed, delta, key.R, keyLen)
	if err != nil {
		return err
	}
	fmt.Printf("\nseed sensitivity: %s of %d keys differ for a %.0e perturbation\n",
		viz.Value.Render(fmt.Sprintf("%.1f%%", frac*100)), keyLen, delta)
	if frac < 0.5 {
		fmt.Println(viz.Warn.Render("weak divergence, pick r deeper in the chaotic band"))
	}
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(cmd)
	if err != nil {
		return err
	}

	points, err := chaos.Bifurcation(key.Seed, rMin, rMax, samples, 200, 400)
	if err != nil {
		return err
	}
	fmt.Print(chaos.BifurcationToASCII(points, 80, 24))
	fmt.Printf("%s\n", viz.Subtle.Render(fmt.Sprintf("r from %.2f to %.2f, left to right", rMin, rMax)))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOP\tSIZE\tR\tKEY\tOUTPUT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.3f\t%s\t%s\n",
			r.ID, r.Operation, r.Width, r.Height, r.R, r.KeyPrint, r.Output)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if err := store.ExportJSON(args[1], meta); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], args[1])
	return nil
}

// writeKeyfile draws a fresh seed from the system entropy pool and
// saves it with the chosen r. The file is the decryption key.
func writeKeyfile(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if cmd.Flags().Changed("r") {
		cfg.R = rParam
	}

	cfg.Seed = randomSeed()
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("%s %s (r=%.3f, key %s)\n", viz.OK.Render("wrote"), args[0], cfg.R, store.Fingerprint(cfg.Seed, cfg.R))
	return nil
}

// randomSeed returns a uniform value strictly inside (0, 1).
func randomSeed() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// no entropy, no key
		panic(err)
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits of mantissa
	s := float64(u) / float64(1<<53)
	if s <= 0 || s >= 1 {
		return 0.5
	}
	return s
}
