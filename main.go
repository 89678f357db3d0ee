package main

import "github.com/zeroonedevs/SheRisesv1/cmd/app"

func main() {
	app.GetApp().LetsGo()
}
