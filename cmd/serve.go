package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/AryanGodara/Koji/midifile"
	"github.com/AryanGodara/Koji/model"
	"github.com/AryanGodara/Koji/perf"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the transformation API",
	Long:  `Serves the transformation API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// GetRenderDir returns where transformed files are written.
func GetRenderDir() string {
	path := os.Getenv("RENDER_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleBPM reads a MIDI stream and reports its effective tempo.
func HandleBPM(w http.ResponseWriter, r *http.Request) {
	p, err := midifile.Read(r.Body)
	if err != nil {
		writeError(w, 400, "Could not parse midi body: "+err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.BPMResponse{BPM: perf.BPM(p)})
}

// HandleTransform reads a MIDI stream, applies the operations selected by
// query parameters and writes the result to a fresh file in the render dir.
func HandleTransform(w http.ResponseWriter, r *http.Request) {
	p, err := midifile.Read(r.Body)
	if err != nil {
		writeError(w, 400, "Could not parse midi body: "+err.Error())
		return
	}

	q := r.URL.Query()

	if v := q.Get("extract"); v != "" {
		rng, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			writeError(w, 400, "Bad extract range: "+v)
			return
		}
		p = perf.ExtractNotes(p, uint8(rng))
	}
	if v := q.Get("transpose"); v != "" {
		semitones, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, 400, "Bad transpose amount: "+v)
			return
		}
		p = perf.Transpose(p, semitones)
	}
	if v := q.Get("remap"); v != "" {
		channel, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			writeError(w, 400, "Bad remap channel: "+v)
			return
		}
		p = perf.RemapInstruments(p, uint8(channel))
	}
	if v := q.Get("stretch"); v != "" {
		factor, err := parseFactor(v)
		if err != nil {
			writeError(w, 400, "Bad stretch factor: "+v)
			return
		}
		p, err = perf.ChangeNoteDuration(p, factor)
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
	}
	if v := q.Get("quantize"); v != "" {
		grid, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			writeError(w, 400, "Bad quantize grid: "+v)
			return
		}
		p, err = perf.Quantize(p, uint32(grid))
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
	}
	if q.Get("reverse") == "true" {
		p = perf.Reverse(p)
	}
	if v := q.Get("tempo"); v != "" {
		tempo, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			writeError(w, 400, "Bad tempo: "+v)
			return
		}
		p = perf.ChangeTempo(p, uint32(tempo))
	}

	filename := uuid.New().String() + ".mid"
	path := filepath.Join(GetRenderDir(), filename)
	if err := midifile.WriteFile(p, path); err != nil {
		writeError(w, 500, "Could not write result: "+err.Error())
		return
	}

	json.NewEncoder(w).Encode(model.TransformResponse{File: filename, NumEvents: len(p)})
}

func serve() {
	if err := os.MkdirAll(GetRenderDir(), 0777); err != nil {
		panic("Could not create render dir: " + err.Error())
	}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/bpm", HandleBPM).Methods("POST")
	router.HandleFunc("/transform", HandleTransform).Methods("POST")

	handler := cors.Default().Handler(router)
	fmt.Println("Listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
