package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	fx "go-fx-exchange"
	"go-fx-exchange/exchange"

	"github.com/shopspring/decimal"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	router  http.ServeMux
}

func NewServer(s exchange.Service) *Server {
	server := &Server{
		Service: s,
		router:  http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		CurrencyPair string          `json:"currencyPair"`
		Amount       decimal.Decimal `json:"amount"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Original      decimal.Decimal `json:"original"`
		MainCurrency  string          `json:"mainCurrency"`
		Amount        decimal.Decimal `json:"amount"`
		MoneyCurrency string          `json:"moneyCurrency"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		bytes, err := ioutil.ReadAll(r.Body)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			rw.Write([]byte(`{"error": "invalid request"}`))
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			rw.Write([]byte(`{"error": "invalid json"}`))
			return
		}

		pair, err := fx.ParsePair(request.CurrencyPair)
		if err != nil {
			rw.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(rw, `{"error": %q}`, err.Error())
			return
		}

		result, err := s.Service.Convert(r.Context(), pair, request.Amount)
		if err != nil {
			var notFound *fx.CurrencyNotFoundError
			switch {
			case errors.As(err, &notFound):
				rw.WriteHeader(http.StatusNotFound)
				fmt.Fprintf(rw, `{"error": "currency '%v' is not supported"}`, notFound.Code)
			case errors.Is(err, fx.ErrNegativeAmount):
				rw.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(rw, `{"error": %q}`, err.Error())
			default:
				rw.WriteHeader(http.StatusInternalServerError)
				rw.Write([]byte(`{"error": "failed conversion"}`))
			}
			return
		}

		response := response{
			Original:      request.Amount,
			MainCurrency:  pair.Main.IsoCode,
			Amount:        result,
			MoneyCurrency: pair.Money.IsoCode,
		}

		enc := json.NewEncoder(rw)
		err = enc.Encode(&response)
		if err != nil {
			rw.WriteHeader(http.StatusInternalServerError)
			rw.Write([]byte(`{"error": "failed json encoding"}`))
			return
		}
	}
}
