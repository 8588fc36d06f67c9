package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/goldtrack/internal/client/models"
	"github.com/dmitrijs2005/goldtrack/internal/client/services"
)

// addAsset walks the add-asset form. Entered values survive a rejected
// submission (an empty answer keeps the previous value); a successful one
// resets the form to its defaults and shows a transient confirmation.
func (a *App) addAsset(ctx context.Context, repo *services.AssetService) {
	typ, err := a.formField("Type (Jewellery/Coin/Bar)", string(a.form.Type))
	if err != nil {
		return
	}
	weight, err := a.formField("Weight (g)", a.form.Weight)
	if err != nil {
		return
	}
	price, err := a.formField("Total Price (INR)", a.form.Price)
	if err != nil {
		return
	}
	date, err := a.formField("Purchase date (YYYY-MM-DD)", a.form.PurchaseDate)
	if err != nil {
		return
	}
	karat, err := a.formField("Karat (24K/22K/18K, optional)", string(a.form.Karat))
	if err != nil {
		return
	}

	a.form = models.AddAssetInput{
		Type:         models.AssetType(typ),
		Weight:       weight,
		Price:        price,
		PurchaseDate: date,
		Karat:        models.Karat(karat),
	}

	msg, err := repo.Add(ctx, a.form)
	if err != nil {
		if a.session.LoggedIn() {
			fmt.Fprintln(a.out, err.Error())
		}
		return
	}

	a.form = models.AddAssetInput{}
	a.showToast("Gold asset added!")
	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	a.renderSection(ctx, repo)
}

// formField prompts for one form value, keeping the previous entry when
// the user submits an empty line.
func (a *App) formField(label, previous string) (string, error) {
	prompt := label
	if previous != "" {
		prompt = fmt.Sprintf("%s [%s]", label, previous)
	}
	value, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return previous, nil
	}
	return value, nil
}
