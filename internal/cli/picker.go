package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// pickPlan asks the user to choose a plan when --plan was not given and
// the store holds more than one.
func pickPlan(ctx context.Context, app *App) (string, error) {
	infos, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}
	switch len(infos) {
	case 0:
		return "", fmt.Errorf("no hay planes: agrega archivos .json al directorio de planes")
	case 1:
		return infos[0].Name, nil
	}

	options := make([]huh.Option[string], len(infos))
	for i, info := range infos {
		label := fmt.Sprintf("%s (%d materias, %d créditos)", info.Name, info.Courses, info.Credits)
		options[i] = huh.NewOption(label, info.Name)
	}

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Selecciona un plan").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// confirmResetAll asks before wiping every course back to pendiente.
func confirmResetAll(plan string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("¿Borrar todo el avance de %q?", plan)).
			Affirmative("Sí").
			Negative("No").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
