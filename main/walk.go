package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/adammck/biped"
	"github.com/adammck/biped/components/walker"
	"github.com/adammck/biped/fake/serial"
	"github.com/adammck/biped/link"
)

type walkOpts struct {
	port   string
	baud   uint
	dryRun bool
	ticks  int
}

func walkCmd() *cobra.Command {
	o := walkOpts{}

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Stream the gait to the joint controller in real time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return walk(o)
		},
	}

	cmd.Flags().StringVar(&o.port, "port", "/dev/ttyACM0", "the serial port path")
	cmd.Flags().UintVar(&o.baud, "baud", link.DefaultBaud, "the serial baud rate")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "don't open the port; log frames instead")
	cmd.Flags().IntVar(&o.ticks, "ticks", 0, "shut down once the gait has advanced this many samples (0 = run until signalled)")
	return cmd
}

func walk(o walkOpts) error {
	c, err := coordinator()
	if err != nil {
		return err
	}

	var port io.ReadWriteCloser
	if o.dryRun {
		port = serial.New()
	} else {
		port, err = link.Open(link.Options{Port: o.port, Baud: o.baud})
		if err != nil {
			return err
		}
	}
	defer port.Close()

	b := biped.New()
	w := walker.New(c, port)
	b.Add(w)

	log.Infof("booting components")
	err = b.Boot()
	if err != nil {
		return err
	}

	// Every byte received from the controller board toggles playback.
	if !o.dryRun {
		go listen(port, w)
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to let the walker
	// halt cleanly before exiting.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	period := time.Duration(c.Config().SampleTime * float64(time.Second))
	t := time.NewTicker(period)
	defer t.Stop()

	log.Infof("starting loop at %v per tick", period)
	n := 0
	for {
		select {
		case <-sigs:
			log.Infof("caught signal, shutting down")
			b.State.Shutdown = true

		case now := <-t.C:
			n += 1
			if o.ticks > 0 && c.Ticks() >= o.ticks {
				b.State.Shutdown = true
			}

			err := b.Tick(now)
			if err != nil {
				return err
			}

			if b.State.Halted {
				log.Infof("halted after %d ticks, %d samples", n, c.Ticks())
				return nil
			}
		}
	}
}

// listen toggles the walker once per byte read from r, until r is closed or
// fails. An idle port returns no bytes (and no error) every read timeout, so
// empty reads are skipped.
func listen(r io.Reader, w *walker.Walker) {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			log.Infof("received %q, paused=%v", c, w.Toggle())
		}

		if err == io.EOF {
			log.Infof("port closed, stopped listening")
			return
		}

		if err != nil {
			log.Warnf("stopped listening: %s", err)
			return
		}
	}
}
