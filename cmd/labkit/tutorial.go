package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gfxcourse/labkit/pkg/mesh"
	"github.com/gfxcourse/labkit/pkg/render"
)

var (
	tutorialStage  string
	tutorialMesh   string
	tutorialWidth  int
	tutorialHeight int
	tutorialTPS    int
)

// tutorialCmd opens the rendering tutorial window
var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Open the rendering tutorial window",
	Long: fmt.Sprintf(`Open a window and run one of the tutorial render stages (%s).
The stage's render callback is invoked once per frame with the elapsed
time and the drawing context. The default stage draws nothing; it is
the starting point of the tutorial.`, strings.Join(render.StageNames(), ", ")),
	RunE: func(cmd *cobra.Command, args []string) error {
		stageName := tutorialStage
		meshPath := tutorialMesh
		width, height, tps := tutorialWidth, tutorialHeight, tutorialTPS
		title := "OpenGL Tutorial"
		if cfg != nil {
			title = cfg.Window.Title
			if !cmd.Flags().Changed("stage") {
				stageName = cfg.Window.Stage
			}
			if !cmd.Flags().Changed("mesh") {
				meshPath = cfg.Window.Mesh
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Window.Width
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Window.Height
			}
			if !cmd.Flags().Changed("tps") {
				tps = cfg.Window.TPS
			}
		}

		var m *mesh.Mesh
		if meshPath != "" {
			var err error
			m, err = mesh.Load(meshPath)
			if err != nil {
				return err
			}
			log.Printf("Loaded mesh %s: %d vertices, %d faces",
				meshPath, len(m.Vertices), len(m.Faces))
		}

		stage, err := render.NewStage(stageName, m)
		if err != nil {
			return err
		}

		manager, err := render.NewManager(title, stage.Render,
			render.WithSize(width, height), render.WithTPS(tps))
		if err != nil {
			return err
		}

		log.Printf("Starting stage %q (%dx%d @ %d tps)", stage.Name(), width, height, tps)
		return manager.Execute()
	},
}

func init() {
	tutorialCmd.Flags().StringVar(&tutorialStage, "stage", "blank",
		"tutorial stage to run")
	tutorialCmd.Flags().StringVar(&tutorialMesh, "mesh", "",
		"OBJ mesh for the lighting stage (default: built-in cube)")
	tutorialCmd.Flags().IntVar(&tutorialWidth, "width", 640, "window width")
	tutorialCmd.Flags().IntVar(&tutorialHeight, "height", 480, "window height")
	tutorialCmd.Flags().IntVar(&tutorialTPS, "tps", 60, "frames per second")
}
