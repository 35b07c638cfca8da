package i18n

// messages maps a key to its per-locale texts. Format verbs must match
// across locales for the same key.
var messages = map[string]map[string]string{
	// Registration and menu.
	"welcome": {
		"uz": "Xush kelibsiz!",
		"ru": "Добро пожаловать!",
		"en": "Welcome!",
	},
	"choose_language": {
		"uz": "Tilni tanlang:",
		"ru": "Выберите язык:",
		"en": "Choose a language:",
	},
	"ask_name": {
		"uz": "Ismingizni kiriting:",
		"ru": "Введите ваше имя:",
		"en": "Enter your name:",
	},
	"registered": {
		"uz": "Ro'yxatdan o'tdingiz, %s!",
		"ru": "Вы зарегистрированы, %s!",
		"en": "You are registered, %s!",
	},
	"language_updated": {
		"uz": "Til o'zgartirildi.",
		"ru": "Язык изменён.",
		"en": "Language updated.",
	},
	"menu_products": {
		"uz": "Mahsulotlar",
		"ru": "Товары",
		"en": "Products",
	},
	"menu_cart": {
		"uz": "Savat",
		"ru": "Корзина",
		"en": "Cart",
	},
	"menu_orders": {
		"uz": "Buyurtmalar tarixi",
		"ru": "История заказов",
		"en": "Order History",
	},
	"menu_support": {
		"uz": "Qo'llab-quvvatlash",
		"ru": "Поддержка",
		"en": "Support",
	},
	"menu_change_language": {
		"uz": "Tilni o'zgartirish",
		"ru": "Сменить язык",
		"en": "Change Language",
	},

	// Catalog browsing.
	"categories_title": {
		"uz": "Kategoriyalar:",
		"ru": "Категории:",
		"en": "Categories:",
	},
	"no_categories": {
		"uz": "Kategoriyalar mavjud emas.",
		"ru": "Категории отсутствуют.",
		"en": "No categories available.",
	},
	"products_title": {
		"uz": "Mahsulotlar:",
		"ru": "Товары:",
		"en": "Products:",
	},
	"no_products": {
		"uz": "Ushbu kategoriyada mahsulotlar mavjud emas.",
		"ru": "В этой категории нет товаров.",
		"en": "No products in this category.",
	},
	"product_entry": {
		"uz": "%d. %s — %d UZS\nTavsif: %s\nSavatga qo'shish: /add_%d\n\n",
		"ru": "%d. %s — %d UZS\nОписание: %s\nДобавить в корзину: /add_%d\n\n",
		"en": "%d. %s — %d UZS\nDescription: %s\nAdd to cart: /add_%d\n\n",
	},
	"nav_prev": {
		"uz": "⬅️ Oldingi",
		"ru": "⬅️ Назад",
		"en": "⬅️ Previous",
	},
	"nav_next": {
		"uz": "Keyingi ➡️",
		"ru": "Вперёд ➡️",
		"en": "Next ➡️",
	},
	"search_usage": {
		"uz": "Qidirish: /search <so'z>",
		"ru": "Поиск: /search <слово>",
		"en": "Search: /search <text>",
	},
	"search_empty": {
		"uz": "Hech narsa topilmadi.",
		"ru": "Ничего не найдено.",
		"en": "Nothing found.",
	},

	// Cart.
	"cart_title": {
		"uz": "Savat:",
		"ru": "Корзина:",
		"en": "Cart:",
	},
	"cart_empty": {
		"uz": "Savat bo'sh.",
		"ru": "Корзина пуста.",
		"en": "Your cart is empty.",
	},
	"cart_entry": {
		"uz": "%d. %s — %d dona — %d UZS\nO'chirish: /remove_%d\nMiqdor: /set_quantity_%d <soni>\n",
		"ru": "%d. %s — %d шт. — %d UZS\nУдалить: /remove_%d\nКоличество: /set_quantity_%d <кол-во>\n",
		"en": "%d. %s — %d pcs — %d UZS\nRemove: /remove_%d\nQuantity: /set_quantity_%d <qty>\n",
	},
	"cart_total": {
		"uz": "Jami: %d UZS",
		"ru": "Итого: %d UZS",
		"en": "Total: %d UZS",
	},
	"place_order_hint": {
		"uz": "Buyurtma berish: /place_order",
		"ru": "Оформить заказ: /place_order",
		"en": "Place order: /place_order",
	},
	"cart_added": {
		"uz": "Mahsulot savatga qo'shildi.",
		"ru": "Товар добавлен в корзину.",
		"en": "Product added to cart.",
	},
	"cart_removed": {
		"uz": "Mahsulot savatdan o'chirildi.",
		"ru": "Товар удалён из корзины.",
		"en": "Product removed from cart.",
	},
	"cart_quantity_updated": {
		"uz": "Miqdor yangilandi.",
		"ru": "Количество обновлено.",
		"en": "Quantity updated.",
	},

	// Checkout.
	"ask_phone": {
		"uz": "Telefon raqamingizni yuboring",
		"ru": "Отправьте ваш номер телефона",
		"en": "Share your phone number",
	},
	"btn_send_phone": {
		"uz": "Telefon raqam yuborish",
		"ru": "Отправить номер",
		"en": "Share phone number",
	},
	"ask_location": {
		"uz": "Manzilingizni yuboring",
		"ru": "Отправьте ваш адрес",
		"en": "Share your location",
	},
	"btn_send_location": {
		"uz": "Lokatsiya yuborish",
		"ru": "Отправить локацию",
		"en": "Share location",
	},
	"choose_delivery": {
		"uz": "Yetkazib berish turini tanlang",
		"ru": "Выберите способ доставки",
		"en": "Choose a delivery type",
	},
	"btn_delivery": {
		"uz": "Yetkazib berish",
		"ru": "Доставка",
		"en": "Delivery",
	},
	"btn_pickup": {
		"uz": "Olib ketish",
		"ru": "Самовывоз",
		"en": "Pickup",
	},
	"choose_payment": {
		"uz": "To'lov usulini tanlang",
		"ru": "Выберите способ оплаты",
		"en": "Choose a payment method",
	},
	"btn_payment_cash": {
		"uz": "Naqd",
		"ru": "Наличные",
		"en": "Cash",
	},
	"btn_payment_payme": {
		"uz": "Payme",
		"ru": "Payme",
		"en": "Payme",
	},
	"btn_payment_click": {
		"uz": "Click",
		"ru": "Click",
		"en": "Click",
	},
	"btn_payment_stripe": {
		"uz": "Stripe",
		"ru": "Stripe",
		"en": "Stripe",
	},
	"btn_payment_onspot": {
		"uz": "Joyida to'lash",
		"ru": "Оплата на месте",
		"en": "Pay on the spot",
	},
	"order_accepted": {
		"uz": "Buyurtma qabul qilindi.",
		"ru": "Заказ принят.",
		"en": "Your order has been accepted.",
	},
	"cart_empty_order": {
		"uz": "Savat bo'sh, buyurtma berish mumkin emas.",
		"ru": "Корзина пуста, заказ оформить нельзя.",
		"en": "Cart is empty, cannot place an order.",
	},

	// Order history.
	"orders_title": {
		"uz": "Buyurtmalar:",
		"ru": "Заказы:",
		"en": "Orders:",
	},
	"no_orders": {
		"uz": "Sizda hali buyurtmalar mavjud emas.",
		"ru": "У вас пока нет заказов.",
		"en": "You have no orders yet.",
	},
	"order_entry": {
		"uz": "%d. %s — %d dona — %s\n",
		"ru": "%d. %s — %d шт. — %s\n",
		"en": "%d. %s — %d pcs — %s\n",
	},

	// Support.
	"support_title": {
		"uz": "Xabarlar:",
		"ru": "Сообщения:",
		"en": "Messages:",
	},
	"no_messages": {
		"uz": "Sizda hali xabarlar mavjud emas.",
		"ru": "У вас пока нет сообщений.",
		"en": "You have no messages yet.",
	},
	"support_prompt": {
		"uz": "Xabaringizni yozing:",
		"ru": "Напишите ваше сообщение:",
		"en": "Write your message:",
	},
	"message_sent": {
		"uz": "Xabaringiz yuborildi.",
		"ru": "Ваше сообщение отправлено.",
		"en": "Your message has been sent.",
	},

	// Admin panel.
	"admin_panel": {
		"uz": "Admin panel:",
		"ru": "Панель администратора:",
		"en": "Admin panel:",
	},
	"no_rights": {
		"uz": "Sizda admin huquqlari yo'q.",
		"ru": "У вас нет прав администратора.",
		"en": "You do not have admin rights.",
	},
	"btn_manage_products": {
		"uz": "Mahsulotlarni boshqarish",
		"ru": "Управление товарами",
		"en": "Manage products",
	},
	"btn_manage_categories": {
		"uz": "Kategoriyalarni boshqarish",
		"ru": "Управление категориями",
		"en": "Manage categories",
	},
	"btn_view_orders": {
		"uz": "Buyurtmalar",
		"ru": "Заказы",
		"en": "Orders",
	},
	"btn_statistics": {
		"uz": "Statistika",
		"ru": "Статистика",
		"en": "Statistics",
	},
	"btn_broadcast": {
		"uz": "Xabar yuborish",
		"ru": "Рассылка",
		"en": "Broadcast",
	},
	"btn_view_users": {
		"uz": "Foydalanuvchilar",
		"ru": "Пользователи",
		"en": "Users",
	},
	"btn_add_product": {
		"uz": "➕ Mahsulot qo'shish",
		"ru": "➕ Добавить товар",
		"en": "➕ Add product",
	},
	"btn_add_category": {
		"uz": "➕ Kategoriya qo'shish",
		"ru": "➕ Добавить категорию",
		"en": "➕ Add category",
	},
	"btn_edit": {
		"uz": "✏️ %s",
		"ru": "✏️ %s",
		"en": "✏️ %s",
	},
	"btn_delete": {
		"uz": "🗑 %s",
		"ru": "🗑 %s",
		"en": "🗑 %s",
	},
	"manage_products_title": {
		"uz": "Mahsulotlar ro'yxati:",
		"ru": "Список товаров:",
		"en": "Product list:",
	},
	"manage_categories_title": {
		"uz": "Kategoriyalar ro'yxati:",
		"ru": "Список категорий:",
		"en": "Category list:",
	},
	"product_deleted": {
		"uz": "Mahsulot o'chirildi.",
		"ru": "Товар удалён.",
		"en": "Product deleted.",
	},
	"category_deleted": {
		"uz": "Kategoriya o'chirildi.",
		"ru": "Категория удалена.",
		"en": "Category deleted.",
	},

	// Product authoring.
	"ask_product_name_uz": {
		"uz": "Mahsulot nomini kiriting (uz):",
		"ru": "Введите название товара (uz):",
		"en": "Enter product name (uz):",
	},
	"ask_product_desc_uz": {
		"uz": "Mahsulot tavsifini kiriting (uz):",
		"ru": "Введите описание товара (uz):",
		"en": "Enter product description (uz):",
	},
	"ask_product_name_ru": {
		"uz": "Mahsulot nomini kiriting (ru):",
		"ru": "Введите название товара (ru):",
		"en": "Enter product name (ru):",
	},
	"ask_product_desc_ru": {
		"uz": "Mahsulot tavsifini kiriting (ru):",
		"ru": "Введите описание товара (ru):",
		"en": "Enter product description (ru):",
	},
	"ask_product_name_en": {
		"uz": "Mahsulot nomini kiriting (en):",
		"ru": "Введите название товара (en):",
		"en": "Enter product name (en):",
	},
	"ask_product_desc_en": {
		"uz": "Mahsulot tavsifini kiriting (en):",
		"ru": "Введите описание товара (en):",
		"en": "Enter product description (en):",
	},
	"ask_product_price": {
		"uz": "Narxini kiriting (UZS):",
		"ru": "Введите цену (UZS):",
		"en": "Enter the price (UZS):",
	},
	"invalid_price": {
		"uz": "Narx butun son bo'lishi kerak. Qayta kiriting:",
		"ru": "Цена должна быть целым числом. Введите ещё раз:",
		"en": "Price must be a whole number. Try again:",
	},
	"choose_product_category": {
		"uz": "Kategoriyani tanlang:",
		"ru": "Выберите категорию:",
		"en": "Choose a category:",
	},
	"product_saved": {
		"uz": "Mahsulot saqlandi.",
		"ru": "Товар сохранён.",
		"en": "Product saved.",
	},

	// Category authoring.
	"ask_category_name_uz": {
		"uz": "Kategoriya nomini kiriting (uz):",
		"ru": "Введите название категории (uz):",
		"en": "Enter category name (uz):",
	},
	"ask_category_name_ru": {
		"uz": "Kategoriya nomini kiriting (ru):",
		"ru": "Введите название категории (ru):",
		"en": "Enter category name (ru):",
	},
	"ask_category_name_en": {
		"uz": "Kategoriya nomini kiriting (en):",
		"ru": "Введите название категории (en):",
		"en": "Enter category name (en):",
	},
	"category_saved": {
		"uz": "Kategoriya saqlandi.",
		"ru": "Категория сохранена.",
		"en": "Category saved.",
	},

	// Admin orders, stats, users, broadcast.
	"all_orders_title": {
		"uz": "Barcha buyurtmalar:",
		"ru": "Все заказы:",
		"en": "All orders:",
	},
	"order_admin_entry": {
		"uz": "#%d %s — %d dona — %s — %s\nTel: %s, Manzil: %s\n",
		"ru": "#%d %s — %d шт. — %s — %s\nТел: %s, Адрес: %s\n",
		"en": "#%d %s — %d pcs — %s — %s\nPhone: %s, Address: %s\n",
	},
	"order_status_updated": {
		"uz": "Buyurtma holati yangilandi.",
		"ru": "Статус заказа обновлён.",
		"en": "Order status updated.",
	},
	"statistics_text": {
		"uz": "Statistika:\nOxirgi 7 kun: %d ta buyurtma, %d UZS\nOxirgi 30 kun: %d ta buyurtma, %d UZS",
		"ru": "Статистика:\nЗа 7 дней: %d заказов, %d UZS\nЗа 30 дней: %d заказов, %d UZS",
		"en": "Statistics:\nLast 7 days: %d orders, %d UZS\nLast 30 days: %d orders, %d UZS",
	},
	"users_title": {
		"uz": "Foydalanuvchilar:",
		"ru": "Пользователи:",
		"en": "Users:",
	},
	"user_entry": {
		"uz": "%d. %s (id: %d, til: %s)\n",
		"ru": "%d. %s (id: %d, язык: %s)\n",
		"en": "%d. %s (id: %d, lang: %s)\n",
	},
	"no_users": {
		"uz": "Foydalanuvchilar yo'q.",
		"ru": "Пользователей нет.",
		"en": "No users.",
	},
	"broadcast_prompt": {
		"uz": "Yuboriladigan xabarni yozing:",
		"ru": "Введите текст рассылки:",
		"en": "Enter the broadcast message:",
	},
	"broadcast_sent": {
		"uz": "Xabar %d foydalanuvchiga yuborildi.",
		"ru": "Сообщение отправлено %d пользователям.",
		"en": "Message sent to %d users.",
	},

	// Errors.
	"error_generic": {
		"uz": "Xatolik yuz berdi. Iltimos, keyinroq urinib ko'ring.",
		"ru": "Произошла ошибка. Попробуйте позже.",
		"en": "Something went wrong. Please try again later.",
	},
	"not_registered": {
		"uz": "Avval ro'yxatdan o'ting: /start",
		"ru": "Сначала зарегистрируйтесь: /start",
		"en": "Please register first: /start",
	},
	"not_found": {
		"uz": "Topilmadi.",
		"ru": "Не найдено.",
		"en": "Not found.",
	},
	"invalid_quantity": {
		"uz": "Miqdor musbat son bo'lishi kerak.",
		"ru": "Количество должно быть положительным числом.",
		"en": "Quantity must be a positive number.",
	},
}
