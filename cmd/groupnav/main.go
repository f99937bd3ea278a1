package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ddvk/groupnav/internal/scenefile"
	"github.com/ddvk/groupnav/navigator"
	"github.com/ddvk/groupnav/scene"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var (
	verbose bool
	dim     = navigator.DefaultDisabledOpacity
)

func runStep(step scenefile.Step, canvas *scene.Canvas, nav *navigator.Navigator) error {
	var target scene.Object
	if step.Target != "" {
		target = canvas.Find(step.Target)
		if target == nil {
			return fmt.Errorf("%s: no object named %q", step, step.Target)
		}
	}
	switch step.Action {
	case scenefile.ActionDoubleClick:
		return canvas.DoubleClick(target)
	case scenefile.ActionEnter:
		return nav.EnterObjectGroup(target)
	case scenefile.ActionBack:
		return nav.Back()
	case scenefile.ActionRoot:
		return nav.GoToRoot()
	}
	return fmt.Errorf("%w %q", scenefile.ErrUnknownAction, step.Action)
}

func replay(file io.Reader, out io.Writer) error {
	sf, err := scenefile.Load(file)
	if err != nil {
		return err
	}
	canvas := scene.NewCanvas()
	if err = sf.Build(canvas); err != nil {
		return err
	}
	nav := navigator.New(canvas, navigator.WithDisabledOpacity(dim))
	nav.Attach()

	canvas.RequestRenderAll()
	fmt.Fprintln(out, "initial:")
	if err = canvas.Render(out); err != nil {
		return err
	}
	for i, step := range sf.Script {
		log.Infof("step %d: %v", i, step)
		if err = runStep(step, canvas, nav); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if !canvas.RenderPending() {
			log.Warnf("step %d: nothing changed, depth %d", i, nav.Depth())
			continue
		}
		fmt.Fprintf(out, "after %v (depth %d):\n", step, nav.Depth())
		if err = canvas.Render(out); err != nil {
			return err
		}
	}
	return nil
}

func _main(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	return replay(file, cmd.OutOrStdout())
}

func main() {
	prefixed := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
		ForceColors:     true,
	}
	log.SetFormatter(prefixed)
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)

	cmd := &cobra.Command{
		Use:          "groupnav <scene.yaml>",
		Short:        "Replay group navigation steps on a scene",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         _main,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().Float64Var(&dim, "dim", navigator.DefaultDisabledOpacity, "opacity of objects outside the entered group")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
