package http

import (
	"time"

	"sepulka/internal/core/application/usecases/queries"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/ports"

	"github.com/aarondl/null/v8"
)

// SepulkaListView is the list representation of an order.
type SepulkaListView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsWarm   bool   `json:"is_warm"`
	IsSquare bool   `json:"is_square"`
	IsSoft   bool   `json:"is_soft"`
	Size     string `json:"size"`
	State    string `json:"state"`
	Creator  string `json:"creator"`
}

// SepulkaDetailView adds timestamps, both stages and the creator.
type SepulkaDetailView struct {
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	IsWarm      bool         `json:"is_warm"`
	IsSquare    bool         `json:"is_square"`
	IsSoft      bool         `json:"is_soft"`
	Size        string       `json:"size"`
	State       string       `json:"state"`
	Creator     CreatorView  `json:"creator"`
	Process     ProcessView  `json:"process"`
	Delivery    DeliveryView `json:"delivery"`
	DateCreated time.Time    `json:"date_created"`
	DateUpdated time.Time    `json:"date_updated"`
}

type CreatorView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ProcessView struct {
	Responsible  null.String `json:"responsible"`
	IsVaccinated bool        `json:"is_vaccinated"`
	IsProcessed  bool        `json:"is_processed"`
	DateUpdated  time.Time   `json:"date_updated"`
}

type DeliveryView struct {
	Responsible null.String `json:"responsible"`
	Method      null.String `json:"method"`
	MethodLabel null.String `json:"method_label"`
	DateUpdated time.Time   `json:"date_updated"`
}

type FlowView struct {
	ID          int64     `json:"id"`
	Message     string    `json:"message"`
	DateCreated time.Time `json:"date_created"`
}

type UserView struct {
	ID         string      `json:"id"`
	Username   string      `json:"username"`
	Email      null.String `json:"email"`
	Role       string      `json:"role"`
	IsStaff    bool        `json:"is_staff"`
	IsActive   bool        `json:"is_active"`
	DateJoined time.Time   `json:"date_joined"`
}

type TokenView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PageView is a page of results with the neighbouring page numbers.
type PageView[T any] struct {
	Count    int64    `json:"count"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	Next     null.Int `json:"next"`
	Previous null.Int `json:"previous"`
	Results  []T      `json:"results"`
}

func pageViewOf[S, T any](p queries.Page[S], convert func(S) T) PageView[T] {
	results := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		results = append(results, convert(item))
	}

	view := PageView[T]{
		Count:    p.Count,
		Page:     p.Page.Number(),
		PageSize: p.Page.Size(),
		Results:  results,
	}
	if p.HasNext() {
		view.Next = null.IntFrom(p.Page.Number() + 1)
	}
	if p.Page.Number() > 1 {
		view.Previous = null.IntFrom(p.Page.Number() - 1)
	}
	return view
}

func sepulkaListViewOf(item queries.SepulkaListItem) SepulkaListView {
	return SepulkaListView{
		Code:     item.Code.String(),
		Name:     item.Name,
		IsWarm:   item.IsWarm,
		IsSquare: item.IsSquare,
		IsSoft:   item.IsSoft,
		Size:     item.Size.String(),
		State:    item.State.String(),
		Creator:  item.CreatorUsername,
	}
}

func sepulkaDetailViewOf(d queries.SepulkaDetails) SepulkaDetailView {
	view := SepulkaDetailView{
		Code:     d.Code.String(),
		Name:     d.Name,
		IsWarm:   d.IsWarm,
		IsSquare: d.IsSquare,
		IsSoft:   d.IsSoft,
		Size:     d.Size.String(),
		State:    d.State.String(),
		Creator:  CreatorView{ID: d.CreatorID.String(), Username: d.CreatorUsername},
		Process: ProcessView{
			Responsible:  d.Process.Responsible,
			IsVaccinated: d.Process.IsVaccinated,
			IsProcessed:  d.Process.IsProcessed,
			DateUpdated:  d.Process.DateUpdated,
		},
		Delivery: DeliveryView{
			Responsible: d.Delivery.Responsible,
			Method:      d.Delivery.Method,
			DateUpdated: d.Delivery.DateUpdated,
		},
		DateCreated: d.DateCreated,
		DateUpdated: d.DateUpdated,
	}
	if d.Delivery.Method.Valid {
		view.Delivery.MethodLabel = null.StringFrom(sepulka.Method(d.Delivery.Method.String).Label())
	}
	return view
}

func flowViewOf(item queries.FlowItem) FlowView {
	return FlowView{ID: item.ID, Message: item.Message, DateCreated: item.DateCreated}
}

func userViewOf(v queries.UserView) UserView {
	return UserView{
		ID:         v.ID.String(),
		Username:   v.Username,
		Email:      null.NewString(v.Email, v.Email != ""),
		Role:       v.Role.String(),
		IsStaff:    v.IsStaff,
		IsActive:   v.IsActive,
		DateJoined: v.DateJoined,
	}
}

func tokenViewOf(t ports.Token) TokenView {
	return TokenView{Token: t.Raw, ExpiresAt: t.ExpiresAt}
}
