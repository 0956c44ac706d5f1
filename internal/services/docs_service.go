package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"opentrip/internal/domain"
	"opentrip/internal/storage"
	"opentrip/internal/utils"
)

// DocsService menghasilkan PDF e-ticket & invoice per booking.
type DocsService struct {
	Bookings     storage.Store[domain.Booking]
	Trips        storage.Store[domain.Trip]
	Transactions storage.Store[domain.Transaction]
	RequestID    string
}

type bookingDocData struct {
	BookingID     string
	TripID        string
	Destination   string
	Description   string
	Participants  int
	BookingStatus domain.Status
	Departure     string
	Return        string
	GuideID       string
	Amount        int64
	PaymentStatus domain.Status
	PaymentMethod string
}

func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+bookingID)
	return buildETicketPDF(data)
}

func (s DocsService) GenerateInvoice(bookingID string) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "booking_id="+bookingID)
	return buildInvoicePDF(data)
}

func (s DocsService) loadBookingDocData(bookingID string) (bookingDocData, error) {
	var out bookingDocData
	booking, err := s.Bookings.Get(bookingID)
	if err != nil {
		return out, err
	}
	out.BookingID = booking.ID
	out.TripID = booking.TripID
	out.Participants = booking.Participants
	out.BookingStatus = booking.Status

	if trip, err := s.Trips.Get(booking.TripID); err == nil {
		out.Destination = trip.Destination
		out.Description = trip.Description
		out.GuideID = trip.GuideID
		if trip.Schedule != nil {
			out.Departure = utils.FormatDate(trip.Schedule.Departure)
			out.Return = utils.FormatDate(trip.Schedule.Return)
		}
	}

	// best-effort: invoice shows amount only when a transaction exists
	payments := PaymentService{Transactions: s.Transactions}
	if txn, err := payments.FindByBookingID(booking.ID); err == nil {
		out.Amount = txn.Amount
		out.PaymentStatus = txn.Status
		out.PaymentMethod = txn.Method
	}

	return out, nil
}

func buildETicketPDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET OPEN TRIP")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Kode Booking : %s", safe(d.BookingID, "-")),
		fmt.Sprintf("Destinasi    : %s", safe(d.Destination, "-")),
		fmt.Sprintf("Peserta      : %d orang", d.Participants),
		fmt.Sprintf("Status       : %s", safe(string(d.BookingStatus), "-")),
		fmt.Sprintf("Berangkat    : %s", safe(d.Departure, "-")),
		fmt.Sprintf("Kembali      : %s", safe(d.Return, "-")),
		fmt.Sprintf("Guide        : %s", safe(d.GuideID, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Catatan: Harap tunjukkan e-ticket ini saat keberangkatan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%s", safeFilenamePart(d.BookingID))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "No Invoice : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Tanggal    : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	desc := fmt.Sprintf("Open Trip %s (%d peserta)", safe(d.Destination, "-"), d.Participants)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	if d.Amount > 0 {
		pdf.Cell(0, 6, "Status pembayaran: "+safe(string(d.PaymentStatus), "-"))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Total: "+utils.FormatRupiah(d.Amount))
	} else {
		pdf.Cell(0, 6, "Belum ada transaksi untuk booking ini.")
	}
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "X"
	}
	return out
}
