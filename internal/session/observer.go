// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package session

import "go.uber.org/zap"

// LogObserver writes every event to logger. Blocked actions log at warn level.
func LogObserver(logger *zap.Logger) Observer {
	return func(event Event) {
		fields := []zap.Field{
			zap.String("event", string(event.Kind)),
			zap.Stringer("step", event.Step),
		}

		switch event.Kind {
		case EventBrandSelected, EventModelSelected:
			fields = append(fields,
				zap.String("brand", event.Brand),
				zap.String("model", event.Model))
		case EventConditionChanged:
			fields = append(fields, zap.String("condition", string(event.Condition)))
		case EventIssueToggled:
			fields = append(fields,
				zap.String("issue", event.Issue),
				zap.Int("issues", event.Issues))
		case EventOfferCalculated:
			fields = append(fields,
				zap.String("brand", event.Brand),
				zap.String("model", event.Model),
				zap.String("condition", string(event.Condition)),
				zap.Int("issues", event.Issues),
				zap.Int("amount", event.Amount))
		case EventItemAdded:
			fields = append(fields,
				zap.String("item_id", event.Item.ID),
				zap.String("item", event.Item.Title()),
				zap.Int("price", event.Item.Price))
		case EventOrderConfirmed:
			fields = append(fields,
				zap.String("order_id", event.Order.ID),
				zap.Int("items", len(event.Order.Items)),
				zap.Int("total", event.Order.Total),
				zap.String("payment", string(event.Order.Payment)))
		case EventBlocked:
			logger.Warn("action blocked", append(fields,
				zap.String("action", event.Action),
				zap.Error(event.Err))...)

			return
		}

		logger.Info("session event", fields...)
	}
}
