package web

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/ja7ad/phantom/pkg/display"
	"github.com/ja7ad/phantom/pkg/report"
	"github.com/ja7ad/phantom/pkg/standby"
)

const (
	surfaceWeb = "web"
	surfaceAPI = "api"
)

type pageView struct {
	*FormState
	Currency    report.Currency
	Cost        string
	CO2         string
	CO2Figure   string
	Chart       template.HTML
	Zero        bool
	DaysInMonth string
	Factor      string
}

func (s *Server) view(st *FormState) pageView {
	constants := s.calc.Config()
	v := pageView{
		FormState:   st,
		Currency:    s.cfg.Currency,
		DaysInMonth: strconv.FormatFloat(constants.AverageDaysInMonth, 'f', -1, 64),
		Factor:      strconv.FormatFloat(constants.CO2EmissionFactorPerKWh, 'f', -1, 64),
	}
	if st.Result != nil {
		v.Cost = display.Money(st.Result.MonthlyCost, s.cfg.Currency.Symbol)
		v.CO2 = display.Mass(st.Result.MonthlyCO2)
		v.CO2Figure = display.Fixed(st.Result.MonthlyCO2)
		v.Chart = report.BarSVG(st.Result.MonthlyCost, s.cfg.Currency.Symbol)
		v.Zero = display.IsZeroImpact(st.Result.MonthlyCost, st.Result.MonthlyCO2)
	}
	return v
}

func (s *Server) render(w http.ResponseWriter, st *FormState) {
	var buf bytes.Buffer
	if err := pageTpl.Execute(&buf, s.view(st)); err != nil {
		s.logger.Error().Err(err).Msg("render form")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	s.render(w, NewFormState(s.cfg.DefaultTariffText()))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	st := &FormState{
		Watts:        r.PostForm.Get("watts"),
		Tariff:       r.PostForm.Get("tariff"),
		StandbyHours: r.PostForm.Get("standby_hours"),
	}

	start := time.Now()
	if err := st.Submit(s.calc); err != nil {
		s.metrics.ObserveInvalid(surfaceWeb, string(st.ErrField), time.Since(start))
		s.logger.Debug().Str("field", string(st.ErrField)).Msg("rejected submission")
	} else {
		s.metrics.ObserveSuccess(surfaceWeb, st.Result.MonthlyCost, st.Result.MonthlyCO2, time.Since(start))
	}
	s.render(w, st)
}

// fieldText accepts a JSON number or string and keeps its text so the API
// validates exactly like the form.
type fieldText string

func (f *fieldText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = fieldText(s)
		return nil
	}
	*f = fieldText(data)
	return nil
}

type estimateRequest struct {
	Watts        fieldText `json:"watts"`
	Tariff       fieldText `json:"tariff"`
	StandbyHours fieldText `json:"standby_hours"`
}

type errorResponse struct {
	Field string `json:"field,omitempty"`
	Error string `json:"error"`
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
		return
	}

	start := time.Now()
	in, res, err := s.calc.Estimate(standby.RawInput{
		Watts:        string(req.Watts),
		Tariff:       string(req.Tariff),
		StandbyHours: string(req.StandbyHours),
	})
	if err != nil {
		var verr *standby.ValidationError
		if !errors.As(err, &verr) {
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		s.metrics.ObserveInvalid(surfaceAPI, string(verr.Field), time.Since(start))
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Field: string(verr.Field), Error: verr.Error()})
		return
	}
	s.metrics.ObserveSuccess(surfaceAPI, res.MonthlyCost, res.MonthlyCO2, time.Since(start))

	s.writeJSON(w, http.StatusOK, report.New(in, res, s.calc.Config(), s.cfg.Currency))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format, err := report.ParseFormat(q.Get("format"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	in, res, err := s.calc.Estimate(standby.RawInput{
		Watts:        q.Get("watts"),
		Tariff:       q.Get("tariff"),
		StandbyHours: q.Get("standby_hours"),
	})
	if err != nil {
		var verr *standby.ValidationError
		if errors.As(err, &verr) {
			s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Field: string(verr.Field), Error: verr.Error()})
			return
		}
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	rep := report.New(in, res, s.calc.Config(), s.cfg.Currency)
	var buf bytes.Buffer
	err = report.Write(&buf, format, rep)
	s.metrics.ObserveExport(string(format), err)
	if err != nil {
		s.logger.Error().Err(err).Str("format", string(format)).Msg("export report")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not render report"})
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="phantom-`+rep.ID+"."+format.Extension()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes v before touching the response so an encoding failure,
// such as an overflowed +Inf figure, still produces a 500 with a body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.logger.Error().Err(err).Int("status", status).Msg("encode response")
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "result cannot be represented as JSON"})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
