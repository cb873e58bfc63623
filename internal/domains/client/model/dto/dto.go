package dto

import (
	"healthtick/internal/domains/client/model"
	"healthtick/shared"
)

type ClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (c *ClientResponse) FromModel(model model.Client) {
	c.ID = model.ID
	c.Name = model.Name
	c.Phone = model.Phone
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (g *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		g.Clients[i].FromModel(mod)
	}
}
