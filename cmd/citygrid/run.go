package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/voidshard/citygrid"
	"github.com/voidshard/citygrid/internal/logger"
	"github.com/voidshard/citygrid/internal/server"
)

// cityFlags are the flags shared by every command that builds a city.
// Explicitly set flags override values from --config.
type cityFlags struct {
	config    string
	variant   string
	blocksX   int
	blocksY   int
	blockSize int
}

func (f *cityFlags) register(cmd *cobra.Command) {
	def := citygrid.DefaultConfig()
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "yaml city config")
	cmd.Flags().StringVar(&f.variant, "variant", string(def.Variant), "layout variant")
	cmd.Flags().IntVarP(&f.blocksX, "blocks-x", "x", def.BlocksX, "number of blocks along x (rows)")
	cmd.Flags().IntVarP(&f.blocksY, "blocks-y", "y", def.BlocksY, "number of blocks along y (columns)")
	cmd.Flags().IntVarP(&f.blockSize, "block-size", "s", def.BlockSize, "block interior size in tiles")
}

// load returns the config described by the flags
func (f *cityFlags) load(cmd *cobra.Command) (*citygrid.CityConfig, error) {
	cfg := citygrid.DefaultConfig()
	if f.config != "" {
		var err error
		cfg, err = citygrid.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = citygrid.VariantType(f.variant)
	}
	if flags.Changed("blocks-x") {
		cfg.BlocksX = f.blocksX
	}
	if flags.Changed("blocks-y") {
		cfg.BlocksY = f.blocksY
	}
	if flags.Changed("block-size") {
		cfg.BlockSize = f.blockSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// build loads config & generates the city
func (f *cityFlags) build(cmd *cobra.Command) (*citygrid.City, error) {
	cfg, err := f.load(cmd)
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}

	start := time.Now()
	city, err := citygrid.New(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s city", cfg.Variant)
	}
	if err := city.Grid().Verify(); err != nil {
		return nil, err
	}

	logger.L().Debug("city.built",
		"variant", cfg.Variant,
		"blocks_x", cfg.BlocksX,
		"blocks_y", cfg.BlocksY,
		"block_size", cfg.BlockSize,
		"rows", city.Grid().Rows(),
		"cols", city.Grid().Cols(),
		"took", time.Since(start),
	)
	return city, nil
}

// outputs are the optional files written by generate
type outputs struct {
	JSON     string
	PNG      string
	Snapshot string
	Scale    int
}

func runGenerate(cmd *cobra.Command, f *cityFlags, out outputs) error {
	city, err := f.build(cmd)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), city)

	if out.JSON != "" {
		if err := city.SaveJSON(out.JSON); err != nil {
			return errors.Wrap(err, "writing json")
		}
		logger.L().Info("city.saved", "format", "json", "path", out.JSON)
	}
	if out.PNG != "" {
		if err := city.Map().SaveAdv(out.PNG, citygrid.DefaultScheme(), out.Scale); err != nil {
			return errors.Wrap(err, "writing png")
		}
		logger.L().Info("city.saved", "format", "png", "path", out.PNG)
	}
	if out.Snapshot != "" {
		if err := city.SaveSnapshot(out.Snapshot); err != nil {
			return errors.Wrap(err, "writing snapshot")
		}
		logger.L().Info("city.saved", "format", "snapshot", "path", out.Snapshot)
	}
	return nil
}

func runPrint(cmd *cobra.Command, f *cityFlags, snapPath string) error {
	var (
		city *citygrid.City
		err  error
	)
	if snapPath != "" {
		city, err = citygrid.LoadSnapshot(snapPath)
		if err != nil {
			return errors.Wrap(err, "loading snapshot")
		}
	} else {
		city, err = f.build(cmd)
		if err != nil {
			return err
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), city.Map().Text())
	return nil
}

func runServe(cmd *cobra.Command, f *cityFlags, addr string) error {
	city, err := f.build(cmd)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(city, logger.L()).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		logger.L().Info("http.listen", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.L().Info("http.shutdown")
	return srv.Shutdown(shutdown)
}
