package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/esimov/pulledge"
	"github.com/esimov/pulledge/gioview"
	"github.com/esimov/pulledge/utils"
)

const HelpBanner = `
┌─┐┬ ┬┬  ┬  ┌─┐┌┬┐┌─┐┌─┐
├─┘│ ││  │  ├┤  │││ ┬├┤
┴  └─┘┴─┘┴─┘└─┘─┴┘└─┘└─┘

Pull edge scroll view demo.
    Version: %s

`

// Version indicates the current build version.
var Version string

var stripeColors = [2]color.NRGBA{
	{R: 0xf5, G: 0xe4, B: 0xd7, A: 0xff},
	{R: 0x0f, G: 0x8b, B: 0x8d, A: 0xff},
}

var (
	// Flags
	source     = flag.String("in", "", "Source image: file path, URL or - for stdin (a striped placeholder if empty)")
	configPath = flag.String("config", "", "TOML configuration file")
	ratio      = flag.Float64("ratio", 0, "Damping ratio applied while pulling away from rest (overrides the config)")
	duration   = flag.Duration("duration", 0, "Reset animation duration (overrides the config)")
	easing     = flag.String("easing", "", "Reset easing: linear, accelerate_decelerate or decelerate (overrides the config)")
	width      = flag.Int("width", 480, "Window width")
	height     = flag.Int("height", 720, "Window height")
	debug      = flag.Bool("debug", false, "Log every scroll position change")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid configuration: %v", utils.ErrorMessage), err)
	}

	var content image.Image
	if *source != "" {
		content, err = loadContent(*source, *width)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	} else {
		content = placeholder(*width, *height*3, 40)
	}

	view, err := gioview.NewView(cfg)
	if err != nil {
		log.Fatalf(utils.DecorateText("Unable to create the view: %v", utils.ErrorMessage), err)
	}
	if *debug {
		view.SetOnScrollListener(pulledge.ScrollListenerFunc(func(y int) {
			core := view.ScrollView()
			log.Printf("%s scrollY=%d offset=%d dragging=%v resetting=%v",
				utils.DecorateText("⇢", utils.StatusMessage), y, core.Offset(), core.Dragging(), core.Resetting())
		}))
	}

	go func() {
		w := app.NewWindow(
			app.Title("Pull edge scroll view"),
			app.Size(unit.Dp(*width), unit.Dp(*height)),
		)
		if err := run(w, view, content); err != nil {
			log.Fatalf(utils.DecorateText("Window error: %v", utils.ErrorMessage), err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loadConfig reads the configuration file, if any, and applies the flag overrides.
func loadConfig() (*pulledge.Config, error) {
	cfg := pulledge.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = pulledge.LoadConfig(*configPath); err != nil {
			return nil, err
		}
	}
	if *ratio != 0 {
		cfg.DampingRatio = *ratio
	}
	if *duration != 0 {
		cfg.ResetDuration.Duration = *duration
	}
	if *easing != "" {
		cfg.Easing = *easing
	}
	return cfg, cfg.Validate()
}

// run the Gio main loop until a DestroyEvent or an ESC key event is captured.
func run(w *app.Window, view *gioview.View, content image.Image) error {
	var ops op.Ops
	src := paint.NewImageOp(content)

	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			for _, ev := range gtx.Events(w) {
				if ke, ok := ev.(key.Event); ok && ke.Name == key.NameEscape {
					w.Perform(system.ActionClose)
				}
			}
			key.InputOp{Tag: w, Keys: key.NameEscape}.Add(gtx.Ops)

			view.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return widget.Image{
					Src:   src,
					Fit:   widget.Unscaled,
					Scale: 1 / gtx.Metric.PxPerDp,
				}.Layout(gtx)
			})
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
