// Command weatherctl is a terminal client for the weatherdash API: search a
// place, show current conditions and the 7-day forecast, and manage saved
// favorites.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"weatherdash/internal/client"
	"weatherdash/internal/types"
)

func usage() {
	fmt.Println("Usage: weatherctl <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  search <query>      resolve a place and show its forecast")
	fmt.Println("  forecast <lat> <lon>  show the forecast for a coordinate")
	fmt.Println("  favs                list saved favorites")
	fmt.Println("  unfav <id>          delete a favorite by id")
	fmt.Println("  repl                interactive search with live suggestions")
	fmt.Println()
	fmt.Println("The API address comes from WEATHERDASH_API (default http://localhost:8080).")
}

func apiBaseURL() string {
	if addr := os.Getenv("WEATHERDASH_API"); addr != "" {
		return addr
	}
	return "http://localhost:8080"
}

func displayForecast(place *types.Place, forecast *types.Forecast) {
	if place != nil {
		header := fmt.Sprintf("Weather for %s:", place.Name)
		fmt.Printf("%s\n%s\n", header, strings.Repeat("-", len(header)))
	}

	cur := forecast.Current
	fmt.Printf("Temperature: %.1f%s (feels like %.1f%s)\n",
		cur.Temperature2m, forecast.CurrentUnits.Temperature2m,
		cur.ApparentTemperature, forecast.CurrentUnits.ApparentTemperature)
	fmt.Printf("Humidity:    %.0f%%\n", cur.RelativeHumidity2m)
	fmt.Printf("Wind:        %.1f %s\n", cur.WindSpeed10m, forecast.CurrentUnits.WindSpeed10m)
	fmt.Printf("Rain:        %.1f %s\n", cur.Precipitation, forecast.CurrentUnits.Precipitation)
	fmt.Println()

	fmt.Println("7-Day Forecast:")
	for _, day := range client.DayRows(forecast) {
		fmt.Printf("%s  High: %5.1f  Low: %5.1f  Rain: %4.1fmm", day.Date, day.TempMax, day.TempMin, day.PrecipitationSum)
		if day.UvIndexMax != nil {
			fmt.Printf("  UV: %.1f", *day.UvIndexMax)
		}
		if day.WindSpeedMax != nil {
			fmt.Printf("  Wind: %.1f", *day.WindSpeedMax)
		}
		fmt.Println()
	}
}

func runSearch(api *client.API, query string) error {
	result, err := api.SearchWeather(query, "")
	if err != nil {
		return err
	}
	displayForecast(&result.Place, result.Forecast)
	return nil
}

func runForecast(api *client.API, latArg, lonArg string) error {
	lat, err := strconv.ParseFloat(latArg, 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q", latArg)
	}
	lon, err := strconv.ParseFloat(lonArg, 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q", lonArg)
	}

	forecast, err := api.Forecast(lat, lon, "")
	if err != nil {
		return err
	}
	place := types.Place{Name: fmt.Sprintf("Lat %.4f, Lon %.4f", lat, lon), Lat: lat, Lon: lon}
	displayForecast(&place, forecast)
	return nil
}

func runListFavorites(api *client.API) error {
	favs, err := api.ListFavorites()
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		fmt.Println("No favorites saved.")
		return nil
	}
	for _, f := range favs {
		fmt.Printf("%s  %-40s (%.4f, %.4f)\n", f.ID, f.Name, f.Lat, f.Lon)
	}
	return nil
}

// runRepl drives an interactive session: every line typed is treated as
// query text with debounced suggestions, and a few commands act on the
// current state.
func runRepl(api *client.API) error {
	session := client.NewSession(api, "")
	defer session.Close()

	updates := make(chan struct{}, 1)
	session.SetOnUpdate(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	})

	if err := session.LoadFavorites(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load favorites: %v\n", err)
	}

	fmt.Println("Type a place name for suggestions. Commands: !<n> select, fav, favs, del <n>, go <lat> <lon>, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "quit" || line == "exit":
			return nil

		case line == "favs":
			for i, f := range session.Favorites() {
				fmt.Printf("  [%d] %-40s (%.4f, %.4f)\n", i+1, f.Name, f.Lat, f.Lon)
			}

		case line == "fav":
			favorite, err := session.SaveSelected()
			if err != nil {
				fmt.Printf("save failed: %v\n", err)
				continue
			}
			fmt.Printf("saved %q\n", favorite.Name)

		case strings.HasPrefix(line, "del "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "del ")))
			favs := session.Favorites()
			if err != nil || n < 1 || n > len(favs) {
				fmt.Println("usage: del <n> (from favs)")
				continue
			}
			if err := session.RemoveFavorite(favs[n-1].ID); err != nil {
				fmt.Printf("delete failed: %v\n", err)
			}

		case strings.HasPrefix(line, "go "):
			fields := strings.Fields(strings.TrimPrefix(line, "go "))
			if len(fields) != 2 {
				fmt.Println("usage: go <lat> <lon>")
				continue
			}
			lat, latErr := strconv.ParseFloat(fields[0], 64)
			lon, lonErr := strconv.ParseFloat(fields[1], 64)
			if latErr != nil || lonErr != nil {
				fmt.Println("usage: go <lat> <lon>")
				continue
			}
			session.ClickMap(lat, lon)
			renderState(session)

		case strings.HasPrefix(line, "!"):
			n, err := strconv.Atoi(strings.TrimPrefix(line, "!"))
			suggestions := session.Suggestions()
			if err != nil || n < 1 || n > len(suggestions) {
				fmt.Println("usage: !<n> (from the suggestion list)")
				continue
			}
			session.SelectPlace(suggestions[n-1])
			renderState(session)

		case line != "":
			// Drop any stale update signal before scheduling a new fetch.
			select {
			case <-updates:
			default:
			}
			session.SetQuery(line)
			// Wait out the debounce window for the suggestion fetch.
			select {
			case <-updates:
				for i, p := range session.Suggestions() {
					fmt.Printf("  [%d] %s\n", i+1, p.Name)
				}
				if msg := session.ErrorMessage(); msg != "" {
					fmt.Printf("error: %s\n", msg)
				}
			case <-time.After(2 * time.Second):
				fmt.Println("no suggestions")
			}
		}
	}
}

func renderState(session *client.Session) {
	if msg := session.ErrorMessage(); msg != "" {
		fmt.Printf("error: %s\n", msg)
	}
	forecast := session.Forecast()
	if forecast == nil || session.Loading() {
		return
	}
	displayForecast(session.Selected(), forecast)
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		return
	}

	api := client.NewAPI(apiBaseURL())

	var err error
	switch os.Args[1] {
	case "search":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		err = runSearch(api, strings.Join(os.Args[2:], " "))
	case "forecast":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		err = runForecast(api, os.Args[2], os.Args[3])
	case "favs":
		err = runListFavorites(api)
	case "unfav":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		err = api.DeleteFavorite(os.Args[2])
	case "repl":
		err = runRepl(api)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "weatherctl: %v\n", err)
		os.Exit(1)
	}
}
